package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/service/alert"
)

type alertService interface {
	List(ctx context.Context) ([]domain.Alert, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListByDemand(ctx context.Context, demandID string) ([]domain.Alert, error)
	ListBySector(ctx context.Context, sectorID string) ([]domain.Alert, error)
	Create(ctx context.Context, input alert.Input) (*domain.Alert, error)
	Update(ctx context.Context, id uuid.UUID, input alert.Input) (*domain.Alert, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertHandler serves the /alerts endpoints.
type AlertHandler struct {
	svc  alertService
	errs errorWriter
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "alert")}}
}

type alertRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	AlertClient *string `json:"alertClient"`
	DemandID    string  `json:"demandID"`
	SectorID    string  `json:"sectorID"`
	Checkbox    bool    `json:"checkbox"`
}

func (a alertRequest) input() alert.Input {
	return alert.Input{
		Name:        a.Name,
		Description: a.Description,
		Date:        a.Date,
		AlertClient: a.AlertClient,
		DemandID:    a.DemandID,
		SectorID:    a.SectorID,
		Checkbox:    a.Checkbox,
	}
}

func toAlertResponses(as []domain.Alert) []alertResponse {
	out := make([]alertResponse, len(as))
	for i := range as {
		out[i] = toAlertResponse(&as[i])
	}
	return out
}

// List handles GET /alerts.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to fetch alerts.")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponses(as))
}

// ListByDemand handles GET /alerts/demand/{demandID}.
func (h *AlertHandler) ListByDemand(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListByDemand(r.Context(), chi.URLParam(r, "demandID"))
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to fetch alerts.")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponses(as))
}

// ListBySector handles GET /alerts/sector/{sectorID}.
func (h *AlertHandler) ListBySector(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListBySector(r.Context(), chi.URLParam(r, "sectorID"))
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to fetch alerts.")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponses(as))
}

// Get handles GET /alerts/{id}.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// Create handles POST /alerts.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to create alert.")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// Update handles PUT /alerts/{id}.
func (h *AlertHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req alertRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponse(a))
}

// Delete handles DELETE /alerts/{id}.
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
