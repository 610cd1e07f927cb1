package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/service"
)

// NotificationHandler serves in-app notification endpoints
type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := queryPage(r)
	items, unread, err := h.noteSvc.GetNotifications(r.Context(), memberID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "unread": unread})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
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
	if err := h.noteSvc.MarkAsRead(r.Context(), memberID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
