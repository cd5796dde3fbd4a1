package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLabelCreated labels the first demandHistory entry of every demand.
const HistoryLabelCreated = "created"

// MaxAttachmentSize is the exclusive upper bound for attachment content (5 MiB).
const MaxAttachmentSize int64 = 5 * 1024 * 1024

// Demand is a service ticket routed through organizational sectors.
// SectorHistory, DemandHistory and UpdateList are owned by the demand and
// are never addressable outside of it.
type Demand struct {
	ID          uuid.UUID
	Name        string
	Description string
	Process     string
	CategoryIDs []uuid.UUID
	// Categories holds the referenced categories that still exist, in
	// CategoryIDs order. Filled by reads, ignored by writes.
	Categories  []Category
	ClientID    string
	UserID      string
	Open        bool

	SectorHistory []SectorAssignment
	DemandHistory []HistoryEntry
	UpdateList    []UpdateEntry

	// Version is bumped on every successful write and checked on the next one.
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SectorAssignment is one step of the routing trail.
// The last element of Demand.SectorHistory is the current assignment.
type SectorAssignment struct {
	SectorID            string    `json:"sectorID"`
	ResponsibleUserName string    `json:"responsibleUserName,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HistoryEntry records one semantically significant change of a demand.
type HistoryEntry struct {
	UserID string    `json:"userID"`
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Before *string   `json:"before,omitempty"`
	After  *string   `json:"after,omitempty"`
}

// UpdateEntry is a note in the demand's update thread, optionally
// carrying one attachment.
type UpdateEntry struct {
	ID                    uuid.UUID  `json:"_id"`
	UserName              string     `json:"userName"`
	UserSector            string     `json:"userSector"`
	UserID                string     `json:"userID"`
	Description           string     `json:"description"`
	VisibilityRestriction bool       `json:"visibilityRestriction"`
	Important             bool       `json:"important"`
	Treatment             *string    `json:"treatment,omitempty"`
	FileID                *uuid.UUID `json:"fileID,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// UpdatePatch holds the replaceable fields of an UpdateEntry.
type UpdatePatch struct {
	UserName              string
	UserSector            string
	UserID                string
	Description           string
	VisibilityRestriction bool
	Important             bool
	Treatment             *string
}

// CurrentSector returns the sector the demand is assigned to now.
// Returns "" if the history is empty.
func (d *Demand) CurrentSector() string {
	if len(d.SectorHistory) == 0 {
		return ""
	}
	return d.SectorHistory[len(d.SectorHistory)-1].SectorID
}

// DemandFilter narrows demand listings. Nil fields are not applied.
type DemandFilter struct {
	Open        *bool
	ClientID    *string
	UserID      *string
	CategoryID  *uuid.UUID
	SectorID    *string
	Name        *string
	Process     *string
	Description *string
	Limit       int
	// NewestFirst orders by creation time descending instead of ascending.
	NewestFirst bool
}

// DemandWithClient is a demand enriched with its client's display name.
type DemandWithClient struct {
	Demand
	ClientName string
}

// HistoryView is a demandHistory entry with the acting user resolved.
type HistoryView struct {
	Label  string
	Before *string
	After  *string
	Date   time.Time
	User   User
}
