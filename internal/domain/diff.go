package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// History labels produced by DiffDemand.
const (
	HistoryLabelName        = "name"
	HistoryLabelDescription = "description"
	HistoryLabelProcess     = "process"
	HistoryLabelCategory    = "category"
	HistoryLabelClient      = "client"
)

// DemandChanges holds the editable fields of a demand as submitted by a user.
type DemandChanges struct {
	Name        string
	Description string
	Process     string
	CategoryIDs []uuid.UUID
	ClientID    string
}

// DiffDemand returns one history entry per field that differs between the
// stored demand and the submitted changes, in a fixed field order.
func DiffDemand(current *Demand, changes DemandChanges, userID string, now time.Time) []HistoryEntry {
	var out []HistoryEntry
	add := func(label, before, after string) {
		if before == after {
			return
		}
		b, a := before, after
		out = append(out, HistoryEntry{UserID: userID, Date: now, Label: label, Before: &b, After: &a})
	}

	add(HistoryLabelName, current.Name, changes.Name)
	add(HistoryLabelDescription, current.Description, changes.Description)
	add(HistoryLabelProcess, current.Process, changes.Process)
	add(HistoryLabelCategory, joinIDs(current.CategoryIDs), joinIDs(changes.CategoryIDs))
	add(HistoryLabelClient, current.ClientID, changes.ClientID)
	return out
}

// Apply copies the changes onto the demand.
func (c DemandChanges) Apply(d *Demand, now time.Time) {
	d.Name = c.Name
	d.Description = c.Description
	d.Process = c.Process
	d.CategoryIDs = append([]uuid.UUID(nil), c.CategoryIDs...)
	d.Categories = nil
	d.ClientID = c.ClientID
	d.UpdatedAt = now
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
