package postgres

import (
	"database/sql"

	"clubcourt-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.WalletRepository
	repository.CourtRepository
	repository.BookingRepository
	repository.TournamentRepository
	repository.MatchRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		MemberRepository:       NewMemberRepository(db),
		WalletRepository:       NewWalletRepository(db),
		CourtRepository:        NewCourtRepository(db),
		BookingRepository:      NewBookingRepository(db),
		TournamentRepository:   NewTournamentRepository(db),
		MatchRepository:        NewMatchRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
