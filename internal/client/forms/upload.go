package forms

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

// UploadDraft describes the chosen file by its detected attributes. The
// three file fields report under the single "file" key; the size rule is
// declared before the type rule so it wins when both fail.
type UploadDraft struct {
	Title       string `form:"title" validate:"notblank"`
	Description string `form:"description"`
	LawyerID    string `form:"lawyerId"`

	FileName string `form:"file" validate:"required"`
	FileSize int64  `form:"file" validate:"lte=10485760"`
	MimeType string `form:"file" validate:"mimeallowed"`
	FilePath string `form:"-"`
}

func (d *UploadDraft) Set(field, value string) error {
	switch field {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "lawyerId":
		d.LawyerID = value
	case "file":
		return d.SetFile(value)
	default:
		return unknownField(field)
	}
	return nil
}

// SetFile inspects the file at path: its size from the file system and its
// type from the content, not the extension.
func (d *UploadDraft) SetFile(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("cannot detect file type: %w", err)
	}

	d.FilePath = path
	d.FileName = filepath.Base(path)
	d.FileSize = st.Size()
	d.MimeType = baseMime(mt.String())
	return nil
}

func baseMime(s string) string {
	m, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(m)
}

var uploadMessages = Messages{
	"title":         "Title is required",
	"file.required": "Please select a file to upload",
	"file.lte":      "File size must be less than 10MB",
	"file":          "Invalid file type. Please upload PDF, DOCX, or images only.",
}

// NewUploadForm uploads on behalf of owner. progress may be nil.
func NewUploadForm(v *Validator, uploader client.DocumentUploader, owner models.ID, progress client.ProgressFunc) *Form[UploadDraft] {
	return newForm(formConfig[UploadDraft]{
		set:      (*UploadDraft).Set,
		validate: func(d UploadDraft) ErrorMap { return v.Validate(d, uploadMessages) },
		submit: func(ctx context.Context, d UploadDraft) error {
			f, err := os.Open(d.FilePath)
			if err != nil {
				return err
			}
			defer f.Close()

			return uploader.UploadDocument(ctx, client.Upload{
				Meta: models.DocumentMeta{
					Title:       d.Title,
					Description: d.Description,
					LawyerID:    models.ID(d.LawyerID),
				},
				OwnerID:  owner,
				FileName: d.FileName,
				Size:     d.FileSize,
				MimeType: d.MimeType,
				Body:     f,
			}, progress)
		},
		fallback: "Failed to upload document. Please try again.",
		reset:    true,
	})
}
