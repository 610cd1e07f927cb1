package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"clubcourt-backend/internal/service"
)

// Services bundles everything the router exposes.
type Services struct {
	Wallet       service.WalletService
	Booking      service.BookingService
	Tournament   service.TournamentService
	Court        service.CourtService
	Member       service.MemberService
	Notification service.NotificationService
}

// NewRouter wires all handlers. Member routes require the X-Member-ID header
// set by the gateway; /admin routes are expected to be gateway-restricted to
// staff.
func NewRouter(svcs Services) *mux.Router {
	wallet := NewWalletHandler(svcs.Wallet)
	booking := NewBookingHandler(svcs.Booking)
	tournament := NewTournamentHandler(svcs.Tournament)
	court := NewCourtHandler(svcs.Court)
	member := NewMemberHandler(svcs.Member)
	note := NewNotificationHandler(svcs.Notification)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(MemberIdentity)

	api.HandleFunc("/me", member.Me).Methods(http.MethodGet)

	api.HandleFunc("/wallet/balance", wallet.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/wallet/transactions", wallet.GetHistory).Methods(http.MethodGet)
	api.HandleFunc("/wallet/deposits", wallet.RequestDeposit).Methods(http.MethodPost)

	api.HandleFunc("/courts", court.List).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}", court.Get).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}/slots", booking.AvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}/availability", booking.CheckAvailability).Methods(http.MethodGet)

	api.HandleFunc("/bookings", booking.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings", booking.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/bookings/recurring", booking.CreateRecurring).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", booking.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", booking.Cancel).Methods(http.MethodDelete)

	api.HandleFunc("/tournaments", tournament.List).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}", tournament.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/join", tournament.Join).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/leave", tournament.Leave).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/matches", tournament.ListMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches", tournament.ListMyMatches).Methods(http.MethodGet)

	api.HandleFunc("/notifications", note.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", note.MarkAsRead).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin/v1").Subrouter()

	admin.HandleFunc("/wallet/deposits/{id}/approve", wallet.ApproveDeposit).Methods(http.MethodPost)
	admin.HandleFunc("/wallet/deposits/{id}/reject", wallet.RejectDeposit).Methods(http.MethodPost)

	admin.HandleFunc("/courts", court.Create).Methods(http.MethodPost)
	admin.HandleFunc("/courts/{id}", court.Update).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{id}/active", court.SetActive).Methods(http.MethodPut)

	admin.HandleFunc("/members", member.Create).Methods(http.MethodPost)
	admin.HandleFunc("/members", member.List).Methods(http.MethodGet)
	admin.HandleFunc("/members/{id}", member.Get).Methods(http.MethodGet)
	admin.HandleFunc("/members/{id}", member.Update).Methods(http.MethodPut)
	admin.HandleFunc("/members/{id}", member.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/members/{id}/tier", member.SetTier).Methods(http.MethodPut)

	admin.HandleFunc("/tournaments", tournament.Create).Methods(http.MethodPost)
	admin.HandleFunc("/tournaments/{id}", tournament.Update).Methods(http.MethodPut)
	admin.HandleFunc("/tournaments/{id}", tournament.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/tournaments/{id}/schedule", tournament.GenerateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/matches", tournament.RecordMatch).Methods(http.MethodPost)
	admin.HandleFunc("/matches/{id}/score", tournament.UpdateScore).Methods(http.MethodPut)

	return r
}
