package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/service"
)

// CourtHandler serves court catalog endpoints
type CourtHandler struct {
	courtSvc service.CourtService
}

func NewCourtHandler(courtSvc service.CourtService) *CourtHandler {
	return &CourtHandler{courtSvc: courtSvc}
}

func (h *CourtHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	courts, err := h.courtSvc.ListCourts(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"courts": courts})
}

func (h *CourtHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.courtSvc.GetCourt(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CourtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Court
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if err := h.courtSvc.CreateCourt(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CourtHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var c domain.Court
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	c.ID = id
	if err := h.courtSvc.UpdateCourt(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *CourtHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if err := h.courtSvc.SetCourtActive(r.Context(), id, req.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
