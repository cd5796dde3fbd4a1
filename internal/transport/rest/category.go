package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, input category.Input) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input category.Input) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves the /categories endpoints.
type CategoryHandler struct {
	svc  categoryService
	errs errorWriter
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "category")}}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (c categoryRequest) input() category.Input {
	return category.Input{Name: c.Name, Description: c.Description, Color: c.Color}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}
	out := make([]categoryResponse, len(cs))
	for i := range cs {
		out[i] = toCategoryResponse(&cs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.Create(r.Context(), req.input())
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeJSON(w, http.StatusConflict, messageBody{Message: "The category already exists."})
		return
	}
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to create category.")
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
