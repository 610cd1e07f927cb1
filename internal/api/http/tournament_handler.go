package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/service"
)

// TournamentHandler serves tournament and match endpoints
type TournamentHandler struct {
	tournSvc service.TournamentService
}

func NewTournamentHandler(tournSvc service.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournSvc: tournSvc}
}

type createTournamentRequest struct {
	Name          string    `json:"name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Format        string    `json:"format"`
	EntryFeeCents int64     `json:"entry_fee_cents"`
	Settings      *string   `json:"settings,omitempty"`
}

func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	format, err := domain.ParseTournamentFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}
	t := &domain.Tournament{
		Name:          req.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Format:        format,
		EntryFeeCents: req.EntryFeeCents,
		Settings:      req.Settings,
	}
	if err := h.tournSvc.CreateTournament(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	t, participants, err := h.tournSvc.GetTournament(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tournament": t, "participants": participants})
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryPage(r)
	items, total, err := h.tournSvc.ListTournaments(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

type joinTournamentRequest struct {
	TeamName *string `json:"team_name,omitempty"`
}

func (h *TournamentHandler) Join(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req joinTournamentRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
			return
		}
	}
	p, err := h.tournSvc.JoinTournament(r.Context(), id, memberID, req.TeamName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *TournamentHandler) Leave(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tournSvc.LeaveTournament(r.Context(), id, memberID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req createTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	format, err := domain.ParseTournamentFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}
	t := &domain.Tournament{
		ID:            id,
		Name:          req.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Format:        format,
		EntryFeeCents: req.EntryFeeCents,
		Settings:      req.Settings,
	}
	if err := h.tournSvc.UpdateTournament(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tournSvc.DeleteTournament(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TournamentHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	matches, err := h.tournSvc.GenerateSchedule(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"matches": matches})
}

func (h *TournamentHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	matches, err := h.tournSvc.ListMatches(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

type recordMatchRequest struct {
	TournamentID   *int64    `json:"tournament_id,omitempty"`
	RoundName      string    `json:"round_name"`
	Date           time.Time `json:"date"`
	Team1Player1ID int64     `json:"team1_player1_id"`
	Team1Player2ID *int64    `json:"team1_player2_id,omitempty"`
	Team2Player1ID *int64    `json:"team2_player1_id,omitempty"`
	Team2Player2ID *int64    `json:"team2_player2_id,omitempty"`
	IsRanked       bool      `json:"is_ranked"`
}

func (h *TournamentHandler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	var req recordMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	m := &domain.Match{
		TournamentID:   req.TournamentID,
		RoundName:      req.RoundName,
		Date:           req.Date,
		Team1Player1ID: req.Team1Player1ID,
		Team1Player2ID: req.Team1Player2ID,
		Team2Player1ID: req.Team2Player1ID,
		Team2Player2ID: req.Team2Player2ID,
		IsRanked:       req.IsRanked,
	}
	if err := h.tournSvc.RecordMatch(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

type updateScoreRequest struct {
	Score1 int32  `json:"score1"`
	Score2 int32  `json:"score2"`
	Status string `json:"status"`
}

func (h *TournamentHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	status, err := domain.ParseMatchStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := h.tournSvc.UpdateScore(r.Context(), matchID, req.Score1, req.Score2, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *TournamentHandler) ListMyMatches(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := queryPage(r)
	items, total, err := h.tournSvc.ListMemberMatches(r.Context(), memberID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}
