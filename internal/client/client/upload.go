package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sync"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Upload describes one document to send.
type Upload struct {
	Meta     models.DocumentMeta
	OwnerID  models.ID
	FileName string
	Size     int64
	MimeType string
	Body     io.Reader
}

// ProgressFunc receives upload progress in percent. Values never decrease
// and 100 is reported only after the server accepted the document.
type ProgressFunc func(percent int)

// DocumentUploader is implemented by HTTPClient (multipart) and S3Uploader.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, up Upload, progress ProgressFunc) error
}

// UploadDocument streams up as multipart/form-data to /api/documents/upload.
func (c *HTTPClient) UploadDocument(ctx context.Context, up Upload, progress ProgressFunc) error {
	tracker := newProgressTracker(up.Size, progress)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, up, tracker))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/documents/upload", pr)
	if err != nil {
		_ = pr.Close()
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	if err := c.send(req, true, nil); err != nil {
		_ = pr.CloseWithError(err)
		return err
	}
	tracker.done()
	return nil
}

func writeMultipart(mw *multipart.Writer, up Upload, tracker *progressTracker) error {
	fields := [][2]string{
		{"title", up.Meta.Title},
		{"description", up.Meta.Description},
	}
	if up.Meta.LawyerID != "" {
		fields = append(fields, [2]string{"lawyerId", up.Meta.LawyerID.String()})
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, up.FileName))
	ct := up.MimeType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, tracker.reader(up.Body)); err != nil {
		return err
	}
	return mw.Close()
}

type progressTracker struct {
	mu       sync.Mutex
	total    int64
	read     int64
	last     int
	report   ProgressFunc
	finished bool
}

func newProgressTracker(total int64, report ProgressFunc) *progressTracker {
	return &progressTracker{total: total, last: -1, report: report}
}

func (t *progressTracker) add(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.read += int64(n)
	if t.total <= 0 {
		return
	}
	p := int(t.read * 100 / t.total)
	// 100 is reserved for the acknowledged upload
	if p > 99 {
		p = 99
	}
	t.emit(p)
}

// rewind handles a body that is read again from the start (request retry).
func (t *progressTracker) rewind() {
	t.mu.Lock()
	t.read = 0
	t.mu.Unlock()
}

func (t *progressTracker) done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.emit(100)
	t.finished = true
}

func (t *progressTracker) emit(p int) {
	if t.report == nil || t.finished || p <= t.last {
		return
	}
	t.last = p
	t.report(p)
}

func (t *progressTracker) reader(r io.Reader) io.Reader {
	return &countingReader{r: r, t: t}
}

func (t *progressTracker) readSeeker(r io.ReadSeeker) io.ReadSeeker {
	return &countingReadSeeker{countingReader: countingReader{r: r, t: t}, s: r}
}

type countingReader struct {
	r io.Reader
	t *progressTracker
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.t.add(n)
	}
	return n, err
}

type countingReadSeeker struct {
	countingReader
	s io.Seeker
}

func (c *countingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := c.s.Seek(offset, whence)
	if err == nil && pos == 0 {
		c.t.rewind()
	}
	return pos, err
}
