package demand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// CreateUpdateEntry appends a note to the demand's update thread.
func (s *Service) CreateUpdateEntry(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*domain.Demand, error) {
	patch, err := input.decode()
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, "add_update", s.byID(id), func(d *domain.Demand) error {
		d.AppendUpdate(newEntry(patch, nil, s.clock.Now()))
		return nil
	})
}

// EditUpdateEntry replaces the fields of the entry, wherever it lives.
func (s *Service) EditUpdateEntry(ctx context.Context, entryID uuid.UUID, input UpdateEntryInput) (*domain.Demand, error) {
	patch, err := input.decode()
	if err != nil {
		return nil, err
	}

	load := func(ctx context.Context) (*domain.Demand, error) {
		return s.demands.GetByUpdateEntryID(ctx, entryID)
	}
	return s.mutate(ctx, "edit_update", load, func(d *domain.Demand) error {
		if err := d.EditUpdate(entryID, patch, s.clock.Now()); err != nil {
			return fmt.Errorf("update entry %s: %w", entryID, err)
		}
		return nil
	})
}

// DeleteUpdateEntry removes the entry from the thread. If it carried an
// attachment, the File record and its content go with it; content that is
// already missing is ignored. The demand write and the File delete commit
// together.
func (s *Service) DeleteUpdateEntry(ctx context.Context, id, entryID uuid.UUID) (*domain.Demand, error) {
	var (
		d       *domain.Demand
		removed domain.UpdateEntry
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		d, err = s.mutate(txCtx, "delete_update", s.byID(id), func(d *domain.Demand) error {
			r, err := d.RemoveUpdate(entryID)
			if err != nil {
				return fmt.Errorf("update entry %s: %w", entryID, err)
			}
			removed = r
			return nil
		})
		if err != nil {
			return err
		}

		if removed.FileID == nil {
			return nil
		}
		return s.releaseFile(txCtx, *removed.FileID)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "update entry deleted",
		slog.String("demand_id", id.String()),
		slog.String("entry_id", entryID.String()),
		slog.Bool("had_attachment", removed.FileID != nil),
	)
	return d, nil
}

// releaseFile deletes a File record and its content.
// A record or content that is already gone is not an error.
func (s *Service) releaseFile(ctx context.Context, fileID uuid.UUID) error {
	f, err := s.files.GetByID(ctx, fileID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "attachment record already gone", slog.String("file_id", fileID.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("get file: %w", err)
	}

	if err := s.files.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("delete file record: %w", err)
	}

	ok, err := s.store.Exists(ctx, f.Path)
	if err != nil {
		return fmt.Errorf("check file content: %w: %w", domain.ErrStorage, err)
	}
	if !ok {
		s.log.WarnContext(ctx, "attachment content already gone",
			slog.String("file_id", fileID.String()),
			slog.String("path", f.Path),
		)
		return nil
	}
	if err := s.store.Delete(ctx, f.Path); err != nil {
		return fmt.Errorf("delete file content: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

func newEntry(patch domain.UpdatePatch, fileID *uuid.UUID, now time.Time) domain.UpdateEntry {
	return domain.UpdateEntry{
		ID:                    uuid.New(),
		UserName:              patch.UserName,
		UserSector:            patch.UserSector,
		UserID:                patch.UserID,
		Description:           patch.Description,
		VisibilityRestriction: patch.VisibilityRestriction,
		Important:             patch.Important,
		Treatment:             patch.Treatment,
		FileID:                fileID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
