package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppendSectorAssignment forwards the demand to a new sector.
// Earlier assignments are never touched.
func (d *Demand) AppendSectorAssignment(sectorID, responsibleUserName string, now time.Time) error {
	if sectorID == "" {
		return NewValidationError("sectorID", "Sector Id is invalid")
	}
	d.SectorHistory = append(d.SectorHistory, SectorAssignment{
		SectorID:            sectorID,
		ResponsibleUserName: responsibleUserName,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	d.UpdatedAt = now
	return nil
}

// ReassignCurrentSector corrects the current assignment in place.
// The length of the sector history does not change.
func (d *Demand) ReassignCurrentSector(sectorID string, now time.Time) error {
	if sectorID == "" {
		return NewValidationError("sectorID", "Sector Id is invalid")
	}
	if len(d.SectorHistory) == 0 {
		return NewValidationError("sectorHistory", "Sector history is empty")
	}
	last := &d.SectorHistory[len(d.SectorHistory)-1]
	last.SectorID = sectorID
	last.UpdatedAt = now
	d.UpdatedAt = now
	return nil
}

// AppendHistory records one change in the demand history.
func (d *Demand) AppendHistory(userID, label string, before, after *string, now time.Time) {
	d.DemandHistory = append(d.DemandHistory, HistoryEntry{
		UserID: userID,
		Date:   now,
		Label:  label,
		Before: before,
		After:  after,
	})
}

// AppendUpdate adds an entry to the update thread. A zero ID is replaced
// with a fresh one.
func (d *Demand) AppendUpdate(entry UpdateEntry) UpdateEntry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	d.UpdateList = append(d.UpdateList, entry)
	if entry.UpdatedAt.After(d.UpdatedAt) {
		d.UpdatedAt = entry.UpdatedAt
	}
	return entry
}

// EditUpdate replaces the editable fields of the entry with the given ID.
// The attachment reference and creation time are kept.
func (d *Demand) EditUpdate(id uuid.UUID, patch UpdatePatch, now time.Time) error {
	i := d.updateIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	e := &d.UpdateList[i]
	e.UserName = patch.UserName
	e.UserSector = patch.UserSector
	e.UserID = patch.UserID
	e.Description = patch.Description
	e.VisibilityRestriction = patch.VisibilityRestriction
	e.Important = patch.Important
	e.Treatment = patch.Treatment
	e.UpdatedAt = now
	d.UpdatedAt = now
	return nil
}

// RemoveUpdate removes the entry with the given ID and returns it, so the
// caller can release its attachment.
func (d *Demand) RemoveUpdate(id uuid.UUID) (UpdateEntry, error) {
	i := d.updateIndex(id)
	if i < 0 {
		return UpdateEntry{}, ErrNotFound
	}
	removed := d.UpdateList[i]
	d.UpdateList = append(d.UpdateList[:i:i], d.UpdateList[i+1:]...)
	return removed, nil
}

func (d *Demand) updateIndex(id uuid.UUID) int {
	for i := range d.UpdateList {
		if d.UpdateList[i].ID == id {
			return i
		}
	}
	return -1
}
