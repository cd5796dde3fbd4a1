package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlertWindow is how far ahead a checked alert stays visible.
const AlertWindow = 7 * 24 * time.Hour

// Category classifies demands. Deleting a category leaves demand
// references dangling.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Alert is a reminder loosely attached to a demand and a sector.
type Alert struct {
	ID          uuid.UUID
	Name        string
	Description string
	Date        time.Time
	AlertClient *string
	DemandID    string
	SectorID    string
	Checkbox    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Pending reports whether the alert is still relevant at now: either
// unchecked, or dated within the next AlertWindow.
func (a *Alert) Pending(now time.Time) bool {
	if !a.Checkbox {
		return true
	}
	return !a.Date.Before(now) && !a.Date.After(now.Add(AlertWindow))
}

// File is attachment metadata. Content lives in the file store under Path.
type File struct {
	ID        uuid.UUID
	Name      string
	Path      string
	Size      int64
	DemandID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoredFileName returns the name attachment content is stored under:
// 32 random hex characters, a dash, then the base of the original name.
func StoredFileName(original string) (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	name := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return hex.EncodeToString(b[:]) + "-" + name, nil
}

// AlertFilter narrows alert listings. Nil fields are not applied.
type AlertFilter struct {
	DemandID *string
	SectorID *string
	// PendingAt keeps only alerts that are unchecked or dated within
	// AlertWindow after the given instant.
	PendingAt *time.Time
}
