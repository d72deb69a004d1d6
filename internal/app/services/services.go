package services

import (
	"context"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/repositories"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/auth"
)

// TxRunner runs a function inside a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// UserStore is the user persistence surface the services depend on
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	ExistsWithEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	ExistsWithRole(ctx context.Context, id int64, role models.RoleType) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	IsVerified(ctx context.Context, id int64) (bool, error)
	SetVerified(ctx context.Context, q db.Querier, id int64) error
}

// ListingStore is the listing persistence surface the services depend on
type ListingStore interface {
	Create(ctx context.Context, listing *models.Listing) (int64, error)
	GetDetailByID(ctx context.Context, id int64) (*models.ListingDetail, error)
	GetForLandlord(ctx context.Context, id, landlordID int64) (*models.Listing, error)
	Search(ctx context.Context, filter *dto.ListingFilter) ([]models.ListingDetail, error)
	TextSearch(ctx context.Context, term string, limit uint64) ([]models.ListingDetail, error)
	Update(ctx context.Context, id int64, req *dto.UpdateListingRequest) error
	Delete(ctx context.Context, id int64) error
	MarkVerified(ctx context.Context, id int64) (bool, error)
	UpdateStatusIf(ctx context.Context, q db.Querier, id int64, from, to models.ListingStatus) (bool, error)
	SetStatus(ctx context.Context, q db.Querier, id int64, to models.ListingStatus) error
}

// BookingStore is the booking persistence surface the services depend on
type BookingStore interface {
	Create(ctx context.Context, q db.Querier, booking *models.Booking) (int64, error)
	GetOwnership(ctx context.Context, id int64) (*models.BookingOwnership, error)
	HasActiveForPair(ctx context.Context, studentID, listingID int64) (bool, error)
	ListForStudent(ctx context.Context, studentID int64) ([]models.BookingDetail, error)
	ListForLandlord(ctx context.Context, landlordID int64) ([]models.BookingDetail, error)
	ListAll(ctx context.Context) ([]models.BookingDetail, error)
	SetStatusIfNot(ctx context.Context, q db.Querier, id int64, not, to models.BookingStatus) (bool, error)
}

// MessageStore is the message persistence surface the services depend on
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]models.MessageDetail, error)
	Conversation(ctx context.Context, userID, otherUserID int64) ([]models.MessageDetail, error)
	MarkConversationRead(ctx context.Context, receiverID, senderID int64) (int64, error)
	ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}

// VerificationStore is the landlord verification persistence surface
type VerificationStore interface {
	Create(ctx context.Context, verification *models.Verification) (int64, error)
	ActiveStatusOfType(ctx context.Context, userID int64, vtype models.VerificationType) (*models.ReviewStatus, error)
	GetByID(ctx context.Context, id int64) (*models.Verification, error)
	ListByUser(ctx context.Context, userID int64) ([]models.VerificationDetail, error)
	ListWithStatus(ctx context.Context, status models.ReviewStatus) ([]models.VerificationDetail, error)
	ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, reviewerID int64) (bool, error)
}

// StudentVerificationStore is the student verification persistence surface
type StudentVerificationStore interface {
	Create(ctx context.Context, sv *models.StudentVerification) (int64, error)
	HasPendingForPair(ctx context.Context, studentID, landlordID int64) (bool, error)
	GetForLandlord(ctx context.Context, id, landlordID int64) (*models.StudentVerification, error)
	ListForLandlord(ctx context.Context, landlordID int64, status *models.ReviewStatus) ([]models.StudentVerificationDetail, error)
	ListForStudent(ctx context.Context, studentID int64) ([]models.StudentVerificationDetail, error)
	ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, notes string) (bool, error)
}

// StatsStore serves the dashboard aggregates
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountListings(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountPendingVerifications(ctx context.Context) (int64, error)
	CountListingsByLandlord(ctx context.Context, landlordID int64) (int64, error)
	CountBookingsByLandlord(ctx context.Context, landlordID int64) (int64, error)
	CountBookingsByLandlordWithStatus(ctx context.Context, landlordID int64, status models.BookingStatus) (int64, error)
	SumConfirmedRevenueByLandlord(ctx context.Context, landlordID int64) (float64, error)
	CountBookingsByStudent(ctx context.Context, studentID int64) (int64, error)
	CountBookingsByStudentWithStatus(ctx context.Context, studentID int64, status models.BookingStatus) (int64, error)
	CountAvailableListings(ctx context.Context) (int64, error)
}

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	ListingService      *ListingService
	BookingService      *BookingService
	MessageService      *MessageService
	VerificationService *VerificationService
	DashboardService    *DashboardService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService),
		ListingService: NewListingService(
			repos.ListingRepository,
			repos.UserRepository,
		),
		BookingService: NewBookingService(
			repos.BookingRepository,
			repos.ListingRepository,
			database,
		),
		MessageService: NewMessageService(
			repos.MessageRepository,
			repos.UserRepository,
		),
		VerificationService: NewVerificationService(
			repos.VerificationRepository,
			repos.StudentVerificationRepository,
			repos.UserRepository,
			database,
		),
		DashboardService: NewDashboardService(repos.StatsRepository),
	}
}
