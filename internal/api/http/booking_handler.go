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

// BookingHandler serves court booking endpoints
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	CourtID   int64     `json:"court_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	b, err := h.bookingSvc.CreateBooking(r.Context(), memberID, req.CourtID, req.StartTime, req.EndTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

type createRecurringRequest struct {
	CourtID         int64     `json:"court_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Rule            string    `json:"rule"`
	OccurrenceCount int32     `json:"occurrence_count"`
}

func (h *BookingHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req createRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	bookings, err := h.bookingSvc.CreateRecurringBooking(r.Context(), memberID, req.CourtID, req.StartTime, req.EndTime, req.Rule, req.OccurrenceCount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"bookings": bookings, "created": len(bookings)})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	b, refunded, err := h.bookingSvc.CancelBooking(r.Context(), memberID, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": b, "refunded": refunded})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.bookingSvc.GetBooking(r.Context(), memberID, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	memberID, err := memberIDFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := queryPage(r)
	items, total, err := h.bookingSvc.ListMyBookings(r.Context(), memberID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	courtID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: start must be RFC3339", domain.ErrInvalidInput))
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("end"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: end must be RFC3339", domain.ErrInvalidInput))
		return
	}
	available, err := h.bookingSvc.IsSlotAvailable(r.Context(), courtID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *BookingHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	courtID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: date must be yyyy-mm-dd", domain.ErrInvalidInput))
		return
	}
	booked, err := h.bookingSvc.AvailableSlots(r.Context(), courtID, day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": booked})
}
