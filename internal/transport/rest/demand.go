package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/service/demand"
)

// demandService defines the operations DemandHandler needs.
type demandService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Demand, error)
	List(ctx context.Context, open *bool) ([]domain.Demand, error)
	ListByClient(ctx context.Context, clientID string, open *bool) ([]domain.Demand, error)
	ListWithClientNames(ctx context.Context, raw map[string]string) ([]domain.DemandWithClient, error)
	Newest(ctx context.Context) ([]domain.Demand, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.HistoryView, error)
	Create(ctx context.Context, input demand.CreateInput) (*domain.Demand, error)
	Update(ctx context.Context, id uuid.UUID, input demand.UpdateInput) (*domain.Demand, error)
	ToggleOpen(ctx context.Context, id uuid.UUID) (*domain.Demand, error)
	ForwardSector(ctx context.Context, id uuid.UUID, sectorID, responsibleUserName string) (*domain.Demand, error)
	ReassignSector(ctx context.Context, id uuid.UUID, sectorID string) (*domain.Demand, error)
	CreateUpdateEntry(ctx context.Context, id uuid.UUID, input demand.UpdateEntryInput) (*domain.Demand, error)
	EditUpdateEntry(ctx context.Context, entryID uuid.UUID, input demand.UpdateEntryInput) (*domain.Demand, error)
	DeleteUpdateEntry(ctx context.Context, id, entryID uuid.UUID) (*domain.Demand, error)
	AttachFile(ctx context.Context, input demand.AttachInput) (*domain.File, error)
	OpenFile(ctx context.Context, fileID uuid.UUID) (*domain.File, io.ReadCloser, error)
}

// DemandHandler serves the /demands endpoints.
type DemandHandler struct {
	svc       demandService
	maxUpload int64
	log       *slog.Logger
	errs      errorWriter
}

// NewDemandHandler creates a DemandHandler. maxUpload caps the multipart
// body of attachment uploads.
func NewDemandHandler(svc demandService, maxUpload int64, logger *slog.Logger) *DemandHandler {
	log := logger.With("handler", "demand")
	return &DemandHandler{svc: svc, maxUpload: maxUpload, log: log, errs: errorWriter{log: log}}
}

type demandRequest struct {
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Process             string     `json:"process"`
	CategoryID          stringList `json:"categoryID"`
	SectorID            string     `json:"sectorID"`
	ResponsibleUserName string     `json:"responsibleUserName"`
	ClientID            string     `json:"clientID"`
	UserID              string     `json:"userID"`
	DemandDate          string     `json:"demandDate"`
}

type sectorRequest struct {
	SectorID            string `json:"sectorID"`
	ResponsibleUserName string `json:"responsibleUserName"`
}

type updateEntryRequest struct {
	UpdateListID          string   `json:"updateListID"`
	UserName              string   `json:"userName"`
	UserSector            string   `json:"userSector"`
	UserID                string   `json:"userID"`
	Description           string   `json:"description"`
	VisibilityRestriction textBool `json:"visibilityRestriction"`
	Important             textBool `json:"important"`
	Treatment             *string  `json:"treatment"`
}

func (r updateEntryRequest) input() demand.UpdateEntryInput {
	return demand.UpdateEntryInput{
		UserName:              r.UserName,
		UserSector:            r.UserSector,
		UserID:                r.UserID,
		Description:           r.Description,
		VisibilityRestriction: string(r.VisibilityRestriction),
		Important:             string(r.Important),
		Treatment:             r.Treatment,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List handles GET /demands?open=.
func (h *DemandHandler) List(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.List(r.Context(), domain.ParseActiveFilter(r.URL.Query().Get("open")))
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Could not get demands.")
		return
	}
	writeJSON(w, http.StatusOK, toPopulatedDemandResponses(ds))
}

// ListWithClientNames handles GET /demands/clients.
func (h *DemandHandler) ListWithClientNames(w http.ResponseWriter, r *http.Request) {
	raw := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}

	ds, err := h.svc.ListWithClientNames(r.Context(), raw)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Could not get demands.")
		return
	}

	out := make([]populatedDemandResponse, len(ds))
	for i := range ds {
		out[i] = toPopulatedDemandResponse(&ds[i].Demand)
		out[i].ClientName = ds[i].ClientName
	}
	writeJSON(w, http.StatusOK, out)
}

// ListByClient handles GET /demands/clients/{clientID}?open=.
func (h *DemandHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	ds, err := h.svc.ListByClient(r.Context(), clientID, domain.ParseActiveFilter(r.URL.Query().Get("open")))
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to fetch demands.")
		return
	}
	writeJSON(w, http.StatusOK, toPopulatedDemandResponses(ds))
}

// Newest handles GET /demands/newest.
func (h *DemandHandler) Newest(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Newest(r.Context())
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to fetch demands.")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponses(ds))
}

// Get handles GET /demands/{id}.
func (h *DemandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID.")
		return
	}
	writeJSON(w, http.StatusOK, toPopulatedDemandResponse(d))
}

// History handles GET /demands/{id}/history.
func (h *DemandHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	views, err := h.svc.History(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Demand not found")
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(views))
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Create handles POST /demands.
func (h *DemandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req demandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.svc.Create(r.Context(), demand.CreateInput{
		Name:                req.Name,
		Description:         req.Description,
		Process:             req.Process,
		CategoryIDs:         req.CategoryID,
		SectorID:            req.SectorID,
		ResponsibleUserName: req.ResponsibleUserName,
		ClientID:            req.ClientID,
		UserID:              req.UserID,
		DemandDate:          req.DemandDate,
	})
	if err != nil {
		h.errs.write(w, r, err, http.StatusInternalServerError, "Failed to create demand")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// Update handles PUT /demands/{id}.
func (h *DemandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req demandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.svc.Update(r.Context(), id, demand.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Process:     req.Process,
		CategoryIDs: req.CategoryID,
		SectorID:    req.SectorID,
		ClientID:    req.ClientID,
		UserID:      req.UserID,
	})
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// Toggle handles PATCH /demands/{id}/toggle.
func (h *DemandHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	d, err := h.svc.ToggleOpen(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// ForwardSector handles POST /demands/{id}/sector.
func (h *DemandHandler) ForwardSector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req sectorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.svc.ForwardSector(r.Context(), id, req.SectorID, req.ResponsibleUserName)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// ReassignSector handles PUT /demands/{id}/sector.
func (h *DemandHandler) ReassignSector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req sectorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.svc.ReassignSector(r.Context(), id, req.SectorID)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// ---------------------------------------------------------------------------
// Update thread
// ---------------------------------------------------------------------------

// CreateUpdate handles POST /demands/{id}/updates.
func (h *DemandHandler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.svc.CreateUpdateEntry(r.Context(), id, req.input())
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// EditUpdate handles PUT /demands/updates.
func (h *DemandHandler) EditUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entryID, err := uuid.Parse(req.UpdateListID)
	if err != nil {
		badRequest(w, "Invalid ID")
		return
	}
	d, err := h.svc.EditUpdateEntry(r.Context(), entryID, req.input())
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid ID")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// DeleteUpdate handles DELETE /demands/{id}/updates.
func (h *DemandHandler) DeleteUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entryID, err := uuid.Parse(req.UpdateListID)
	if err != nil {
		badRequest(w, "Invalid ID")
		return
	}
	d, err := h.svc.DeleteUpdateEntry(r.Context(), id, entryID)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "failure")
		return
	}
	writeJSON(w, http.StatusOK, toDemandResponse(d))
}

// ---------------------------------------------------------------------------
// Attachments
// ---------------------------------------------------------------------------

// Upload handles POST /demands/{id}/file: a multipart form with a "file"
// part plus the update entry fields.
func (h *DemandHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(domain.MaxAttachmentSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errs.write(w, r, &domain.SizeLimitError{Size: tooLarge.Limit, Limit: domain.MaxAttachmentSize},
				http.StatusBadRequest, "")
			return
		}
		badRequest(w, "Failed to save file.")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "File is required.")
		return
	}
	defer file.Close()

	f, err := h.svc.AttachFile(r.Context(), demand.AttachInput{
		DemandID:    id,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
		Entry:       entryFromForm(r.MultipartForm),
	})
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to save file.")
		return
	}
	writeJSON(w, http.StatusOK, toFileResponse(f))
}

// entryFromForm reads the update entry fields of an upload form.
// "visibility" is accepted as an alias of "visibilityRestriction".
func entryFromForm(form *multipart.Form) demand.UpdateEntryInput {
	get := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	visibility := get("visibilityRestriction")
	if visibility == "" {
		visibility = get("visibility")
	}
	in := demand.UpdateEntryInput{
		UserName:              get("userName"),
		UserSector:            get("userSector"),
		UserID:                get("userID"),
		Description:           get("description"),
		VisibilityRestriction: visibility,
		Important:             get("important"),
	}
	if t := get("treatment"); t != "" {
		in.Treatment = &t
	}
	return in
}

// Download handles GET /demands/file/{idFile}.
func (h *DemandHandler) Download(w http.ResponseWriter, r *http.Request) {
	fileID, ok := pathID(w, r, "idFile")
	if !ok {
		return
	}

	f, content, err := h.svc.OpenFile(r.Context(), fileID)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to get file.")
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", demand.PDFContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s", strconv.Quote(f.Name)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, content); err != nil {
		h.log.WarnContext(r.Context(), "stream attachment", slog.String("error", err.Error()))
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pathID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		badRequest(w, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid request body")
		return false
	}
	return true
}
