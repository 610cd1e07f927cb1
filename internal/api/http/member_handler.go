package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/service"
)

// MemberHandler serves member administration endpoints
type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := h.memberSvc.GetMember(r.Context(), memberID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m domain.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if err := h.memberSvc.CreateMember(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := h.memberSvc.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryPage(r)
	items, total, err := h.memberSvc.ListMembers(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var m domain.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	m.ID = id
	if err := h.memberSvc.UpdateMember(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type setTierRequest struct {
	Tier string `json:"tier"`
}

func (h *MemberHandler) SetTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req setTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	tier, err := domain.ParseMemberTier(req.Tier)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.memberSvc.SetTier(r.Context(), id, tier); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.memberSvc.DeleteMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
