package demand

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// PDFContentType is the only attachment format accepted.
const PDFContentType = "application/pdf"

//go:embed assets/not_found.pdf
var notFoundPDF []byte

// AttachFile stores an attachment and appends an update entry pointing at it.
//
// The content and its File record are written before the size limit and
// the entry fields are checked, so a rejected upload leaves both behind
// until the orphan sweeper removes them.
func (s *Service) AttachFile(ctx context.Context, input AttachInput) (f *domain.File, err error) {
	defer func() { s.metrics.IncrementOp("attach", err) }()

	if !isPDF(input.ContentType) {
		return nil, domain.NewValidationError("file", "Invalid format.")
	}

	name, err := domain.StoredFileName(input.FileName)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, name, input.Content, input.Size); err != nil {
		return nil, fmt.Errorf("store content: %w: %w", domain.ErrStorage, err)
	}

	now := s.clock.Now()
	f = &domain.File{
		ID:        uuid.New(),
		Name:      input.FileName,
		Path:      name,
		Size:      input.Size,
		DemandID:  input.DemandID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.files.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}

	if input.Size >= domain.MaxAttachmentSize {
		s.log.WarnContext(ctx, "attachment over size limit kept as orphan",
			slog.String("file_id", f.ID.String()),
			slog.Int64("size", input.Size),
		)
		return nil, &domain.SizeLimitError{Size: input.Size, Limit: domain.MaxAttachmentSize}
	}

	patch, err := input.Entry.decode()
	if err != nil {
		return nil, err
	}

	fileID := f.ID
	_, err = s.mutate(ctx, "attach_entry", s.byID(input.DemandID), func(d *domain.Demand) error {
		d.AppendUpdate(newEntry(patch, &fileID, s.clock.Now()))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attachment stored",
		slog.String("demand_id", input.DemandID.String()),
		slog.String("file_id", f.ID.String()),
		slog.Int64("size", f.Size),
	)
	return f, nil
}

// OpenFile streams an attachment. When the record exists but its content
// is missing, a placeholder "PDF not found" document is returned instead.
func (s *Service) OpenFile(ctx context.Context, fileID uuid.UUID) (*domain.File, io.ReadCloser, error) {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Open(ctx, f.Path)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "attachment content missing, serving placeholder",
			slog.String("file_id", f.ID.String()),
		)
		return f, io.NopCloser(bytes.NewReader(notFoundPDF)), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open file content: %w: %w", domain.ErrStorage, err)
	}
	return f, rc, nil
}

func isPDF(contentType string) bool {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mt), PDFContentType)
}
