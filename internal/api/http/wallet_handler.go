package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/service"
)

// WalletHandler serves member wallet endpoints
type WalletHandler struct {
	walletSvc service.WalletService
}

func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	balance, err := h.walletSvc.GetBalance(r.Context(), memberID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"balance_cents": balance})
}

func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := queryPage(r)
	items, total, err := h.walletSvc.GetHistory(r.Context(), memberID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

type depositRequest struct {
	AmountCents int64   `json:"amount_cents"`
	Note        string  `json:"note,omitempty"`
	ProofRef    *string `json:"proof_ref,omitempty"`
}

func (h *WalletHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	t, err := h.walletSvc.RequestDeposit(r.Context(), memberID, req.AmountCents, req.Note, req.ProofRef)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *WalletHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	txID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	t, err := h.walletSvc.ApproveDeposit(r.Context(), txID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

type rejectDepositRequest struct {
	Reason string `json:"reason"`
}

func (h *WalletHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	txID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req rejectDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	t, err := h.walletSvc.RejectDeposit(r.Context(), txID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
