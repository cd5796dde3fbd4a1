// Package sweeper removes attachments whose upload never made it into an
// update entry, such as uploads rejected by the size check after their
// record was written.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

type orphanRepo interface {
	ListOrphans(ctx context.Context, createdBefore time.Time, limit int) ([]domain.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentStore interface {
	Delete(ctx context.Context, name string) error
}

// clock must be the same civil clock that stamps File.CreatedAt, otherwise
// the retention cutoff is shifted by the zone offset.
type clock interface {
	Now() time.Time
}

// Result summarizes one sweep.
type Result struct {
	Removed int
	Failed  int
}

// Sweeper deletes orphaned file records together with their content.
type Sweeper struct {
	files     orphanRepo
	store     contentStore
	clock     clock
	batchSize int
	log       *slog.Logger
}

// New creates a Sweeper that loads batchSize orphans at a time.
func New(log *slog.Logger, files orphanRepo, store contentStore, clk clock, batchSize int) *Sweeper {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Sweeper{
		files:     files,
		store:     store,
		clock:     clk,
		batchSize: batchSize,
		log:       log.With("service", "sweeper"),
	}
}

// Run removes orphans older than retention until none are left or a whole
// batch fails. Content is deleted before its record so a failed content
// delete leaves the record for the next run.
func (s *Sweeper) Run(ctx context.Context, retention time.Duration) (Result, error) {
	cutoff := s.clock.Now().Add(-retention)
	var res Result

	for {
		batch, err := s.files.ListOrphans(ctx, cutoff, s.batchSize)
		if err != nil {
			return res, fmt.Errorf("list orphans: %w", err)
		}
		if len(batch) == 0 {
			return res, nil
		}

		removed := 0
		for _, f := range batch {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if err := s.remove(ctx, f); err != nil {
				res.Failed++
				s.log.WarnContext(ctx, "remove orphan attachment",
					slog.String("file_id", f.ID.String()),
					slog.String("path", f.Path),
					slog.String("error", err.Error()),
				)
				continue
			}
			removed++
		}
		res.Removed += removed

		if removed == 0 || len(batch) < s.batchSize {
			return res, nil
		}
	}
}

func (s *Sweeper) remove(ctx context.Context, f domain.File) error {
	if err := s.store.Delete(ctx, f.Path); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if err := s.files.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
