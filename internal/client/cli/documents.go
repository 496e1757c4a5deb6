package cli

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Upload sends a document, printing progress as it goes.
func (a *App) Upload(ctx context.Context) error {
	s := a.requireRole(ctx)
	if s == nil {
		return nil
	}

	last := -1
	progress := func(p int) {
		if p != last {
			a.printf("\rUploading... %3d%%", p)
			last = p
		}
		if p == 100 {
			a.println()
		}
	}
	f := forms.NewUploadForm(a.validator, a.uploader, s.UserID, progress)

	fields := []field{
		{name: "title", prompt: "Document title"},
		{name: "description", prompt: "Description (optional)"},
	}
	if s.Role == models.RoleClient {
		fields = append(fields, field{name: "lawyerId", prompt: "Share with lawyer id (optional)"})
	}
	fields = append(fields, field{name: "file", prompt: "Path to file (PDF, DOC, DOCX, JPEG or PNG, up to 10MB)"})
	if err := fill(a, f, fields); err != nil {
		return err
	}

	ok := submit(ctx, a, f)
	if last >= 0 && last < 100 {
		a.println()
	}
	if ok {
		a.println("Document uploaded successfully!")
	}
	return nil
}
