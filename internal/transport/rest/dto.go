package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// textBool accepts a JSON string or boolean and keeps its text form, so the
// service can reject anything but "true" and "false".
type textBool string

func (b *textBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = textBool(s)
		return nil
	default:
		*b = textBool(string(data))
		return nil
	}
}

// stringList accepts a JSON array of strings or a single string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = stringList{s}
		return nil
	}
	var s []string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = s
	return nil
}

type demandResponse struct {
	ID            uuid.UUID                 `json:"_id"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	Process       string                    `json:"process"`
	CategoryID    []uuid.UUID               `json:"categoryID"`
	SectorHistory []domain.SectorAssignment `json:"sectorHistory"`
	ClientID      string                    `json:"clientID"`
	ClientName    string                    `json:"clientName,omitempty"`
	UserID        string                    `json:"userID"`
	Open          bool                      `json:"open"`
	DemandHistory []domain.HistoryEntry     `json:"demandHistory"`
	UpdateList    []domain.UpdateEntry      `json:"updateList"`
	Version       int                       `json:"version"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

func toDemandResponse(d *domain.Demand) demandResponse {
	return demandResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Process:       d.Process,
		CategoryID:    orEmpty(d.CategoryIDs),
		SectorHistory: orEmpty(d.SectorHistory),
		ClientID:      d.ClientID,
		UserID:        d.UserID,
		Open:          d.Open,
		DemandHistory: orEmpty(d.DemandHistory),
		UpdateList:    orEmpty(d.UpdateList),
		Version:       d.Version,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDemandResponses(ds []domain.Demand) []demandResponse {
	out := make([]demandResponse, len(ds))
	for i := range ds {
		out[i] = toDemandResponse(&ds[i])
	}
	return out
}

// populatedDemandResponse renders categoryID as the referenced category
// documents instead of bare ids.
type populatedDemandResponse struct {
	demandResponse
	CategoryID []categoryResponse `json:"categoryID"`
}

func toPopulatedDemandResponse(d *domain.Demand) populatedDemandResponse {
	cats := make([]categoryResponse, len(d.Categories))
	for i := range d.Categories {
		cats[i] = toCategoryResponse(&d.Categories[i])
	}
	return populatedDemandResponse{demandResponse: toDemandResponse(d), CategoryID: cats}
}

func toPopulatedDemandResponses(ds []domain.Demand) []populatedDemandResponse {
	out := make([]populatedDemandResponse, len(ds))
	for i := range ds {
		out[i] = toPopulatedDemandResponse(&ds[i])
	}
	return out
}

type historyUser struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Role   string `json:"role"`
}

type historyResponse struct {
	Label  string      `json:"label"`
	Before *string     `json:"before,omitempty"`
	After  *string     `json:"after,omitempty"`
	Date   time.Time   `json:"date"`
	User   historyUser `json:"user"`
}

func toHistoryResponses(views []domain.HistoryView) []historyResponse {
	out := make([]historyResponse, len(views))
	for i, v := range views {
		out[i] = historyResponse{
			Label:  v.Label,
			Before: v.Before,
			After:  v.After,
			Date:   v.Date,
			User:   historyUser{ID: v.User.ID, Name: v.User.Name, Sector: v.User.Sector, Role: v.User.Role},
		}
	}
	return out
}

type fileResponse struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	DemandID  uuid.UUID `json:"demandId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFileResponse(f *domain.File) fileResponse {
	return fileResponse{
		ID:        f.ID,
		Name:      f.Name,
		Path:      f.Path,
		Size:      f.Size,
		DemandID:  f.DemandID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

type categoryResponse struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type alertResponse struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	AlertClient *string   `json:"alertClient,omitempty"`
	DemandID    string    `json:"demandID"`
	SectorID    string    `json:"sectorID"`
	Checkbox    bool      `json:"checkbox"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toAlertResponse(a *domain.Alert) alertResponse {
	return alertResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Date:        a.Date,
		AlertClient: a.AlertClient,
		DemandID:    a.DemandID,
		SectorID:    a.SectorID,
		Checkbox:    a.Checkbox,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// statsRowResponse is one group of a statistics report.
type statsRowResponse struct {
	ID       string            `json:"_id"`
	Count    int64             `json:"count"`
	Category *categoryResponse `json:"category,omitempty"`
}

func toStatsResponses(rows []domain.StatsRow) []statsRowResponse {
	out := make([]statsRowResponse, len(rows))
	for i, r := range rows {
		out[i] = statsRowResponse{ID: r.ID, Count: r.Count}
		if r.Category != nil {
			c := toCategoryResponse(r.Category)
			out[i].Category = &c
		}
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
