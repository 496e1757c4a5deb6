package models

import (
	"bytes"
	"encoding/json"

	"github.com/dustin/go-humanize"
)

// Document is an uploaded file as listed on dashboards.
type Document struct {
	ID                ID           `json:"id"`
	Name              string       `json:"name"`
	UploadedAt        string       `json:"uploadedAt"`
	Size              DocumentSize `json:"size"`
	OwnerOrClientName string       `json:"clientName,omitempty"`
}

// DocumentSize is a display size. The backend sends either a preformatted
// string ("2.5 MB") or a byte count, which is rendered with go-humanize.
type DocumentSize string

func (s *DocumentSize) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = DocumentSize(v)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = DocumentSize(humanize.Bytes(n))
	return nil
}

// DocumentMeta travels alongside an uploaded file.
type DocumentMeta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	LawyerID    ID     `json:"lawyerId,omitempty"`
}

// StoredDocument registers a file that was written straight to object
// storage (POST /api/documents).
type StoredDocument struct {
	DocumentMeta
	StorageKey string `json:"storageKey"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
}
