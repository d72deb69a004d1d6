package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                *UserRepository
	ListingRepository             *ListingRepository
	BookingRepository             *BookingRepository
	MessageRepository             *MessageRepository
	VerificationRepository        *VerificationRepository
	StudentVerificationRepository *StudentVerificationRepository
	StatsRepository               *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                NewUserRepository(db),
		ListingRepository:             NewListingRepository(db),
		BookingRepository:             NewBookingRepository(db),
		MessageRepository:             NewMessageRepository(db),
		VerificationRepository:        NewVerificationRepository(db),
		StudentVerificationRepository: NewStudentVerificationRepository(db),
		StatsRepository:               NewStatsRepository(db),
	}
}
