package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
)

// fakeTxRunner executes the transaction body directly with a nil tx, so store
// mocks observe the same calls they would inside a real transaction.
type fakeTxRunner struct {
	beginErr error
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	var tx pgx.Tx
	return fn(ctx, tx)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) ExistsWithEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) ExistsWithRole(ctx context.Context, id int64, role models.RoleType) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) IsVerified(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) SetVerified(ctx context.Context, q db.Querier, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type mockListingStore struct{ mock.Mock }

func (m *mockListingStore) Create(ctx context.Context, listing *models.Listing) (int64, error) {
	args := m.Called(ctx, listing)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockListingStore) GetDetailByID(ctx context.Context, id int64) (*models.ListingDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.ListingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingStore) GetForLandlord(ctx context.Context, id, landlordID int64) (*models.Listing, error) {
	args := m.Called(ctx, id, landlordID)
	if v := args.Get(0); v != nil {
		return v.(*models.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingStore) Search(ctx context.Context, filter *dto.ListingFilter) ([]models.ListingDetail, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]models.ListingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingStore) TextSearch(ctx context.Context, term string, limit uint64) ([]models.ListingDetail, error) {
	args := m.Called(ctx, term, limit)
	if v := args.Get(0); v != nil {
		return v.([]models.ListingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingStore) Update(ctx context.Context, id int64, req *dto.UpdateListingRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *mockListingStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockListingStore) MarkVerified(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockListingStore) UpdateStatusIf(ctx context.Context, q db.Querier, id int64, from, to models.ListingStatus) (bool, error) {
	args := m.Called(ctx, q, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockListingStore) SetStatus(ctx context.Context, q db.Querier, id int64, to models.ListingStatus) error {
	args := m.Called(ctx, q, id, to)
	return args.Error(0)
}

type mockBookingStore struct{ mock.Mock }

func (m *mockBookingStore) Create(ctx context.Context, q db.Querier, booking *models.Booking) (int64, error) {
	args := m.Called(ctx, q, booking)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingStore) GetOwnership(ctx context.Context, id int64) (*models.BookingOwnership, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingOwnership), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) HasActiveForPair(ctx context.Context, studentID, listingID int64) (bool, error) {
	args := m.Called(ctx, studentID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingStore) ListForStudent(ctx context.Context, studentID int64) ([]models.BookingDetail, error) {
	args := m.Called(ctx, studentID)
	if v := args.Get(0); v != nil {
		return v.([]models.BookingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ListForLandlord(ctx context.Context, landlordID int64) ([]models.BookingDetail, error) {
	args := m.Called(ctx, landlordID)
	if v := args.Get(0); v != nil {
		return v.([]models.BookingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.BookingDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) SetStatusIfNot(ctx context.Context, q db.Querier, id int64, not, to models.BookingStatus) (bool, error) {
	args := m.Called(ctx, q, id, not, to)
	return args.Bool(0), args.Error(1)
}

type mockMessageStore struct{ mock.Mock }

func (m *mockMessageStore) Create(ctx context.Context, message *models.Message) (int64, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageStore) ListForUser(ctx context.Context, userID int64) ([]models.MessageDetail, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.MessageDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMessageStore) Conversation(ctx context.Context, userID, otherUserID int64) ([]models.MessageDetail, error) {
	args := m.Called(ctx, userID, otherUserID)
	if v := args.Get(0); v != nil {
		return v.([]models.MessageDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMessageStore) MarkConversationRead(ctx context.Context, receiverID, senderID int64) (int64, error) {
	args := m.Called(ctx, receiverID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageStore) ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.ConversationSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVerificationStore struct{ mock.Mock }

func (m *mockVerificationStore) Create(ctx context.Context, verification *models.Verification) (int64, error) {
	args := m.Called(ctx, verification)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVerificationStore) ActiveStatusOfType(ctx context.Context, userID int64, vtype models.VerificationType) (*models.ReviewStatus, error) {
	args := m.Called(ctx, userID, vtype)
	if v := args.Get(0); v != nil {
		return v.(*models.ReviewStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVerificationStore) GetByID(ctx context.Context, id int64) (*models.Verification, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Verification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVerificationStore) ListByUser(ctx context.Context, userID int64) ([]models.VerificationDetail, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.VerificationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVerificationStore) ListWithStatus(ctx context.Context, status models.ReviewStatus) ([]models.VerificationDetail, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]models.VerificationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVerificationStore) ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, reviewerID int64) (bool, error) {
	args := m.Called(ctx, q, id, status, reviewerID)
	return args.Bool(0), args.Error(1)
}

type mockStudentVerificationStore struct{ mock.Mock }

func (m *mockStudentVerificationStore) Create(ctx context.Context, sv *models.StudentVerification) (int64, error) {
	args := m.Called(ctx, sv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStudentVerificationStore) HasPendingForPair(ctx context.Context, studentID, landlordID int64) (bool, error) {
	args := m.Called(ctx, studentID, landlordID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentVerificationStore) GetForLandlord(ctx context.Context, id, landlordID int64) (*models.StudentVerification, error) {
	args := m.Called(ctx, id, landlordID)
	if v := args.Get(0); v != nil {
		return v.(*models.StudentVerification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentVerificationStore) ListForLandlord(ctx context.Context, landlordID int64, status *models.ReviewStatus) ([]models.StudentVerificationDetail, error) {
	args := m.Called(ctx, landlordID, status)
	if v := args.Get(0); v != nil {
		return v.([]models.StudentVerificationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentVerificationStore) ListForStudent(ctx context.Context, studentID int64) ([]models.StudentVerificationDetail, error) {
	args := m.Called(ctx, studentID)
	if v := args.Get(0); v != nil {
		return v.([]models.StudentVerificationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentVerificationStore) ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, notes string) (bool, error) {
	args := m.Called(ctx, q, id, status, notes)
	return args.Bool(0), args.Error(1)
}

type mockStatsStore struct{ mock.Mock }

func (m *mockStatsStore) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountListings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountBookings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountPendingVerifications(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountListingsByLandlord(ctx context.Context, landlordID int64) (int64, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountBookingsByLandlord(ctx context.Context, landlordID int64) (int64, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountBookingsByLandlordWithStatus(ctx context.Context, landlordID int64, status models.BookingStatus) (int64, error) {
	args := m.Called(ctx, landlordID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) SumConfirmedRevenueByLandlord(ctx context.Context, landlordID int64) (float64, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockStatsStore) CountBookingsByStudent(ctx context.Context, studentID int64) (int64, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountBookingsByStudentWithStatus(ctx context.Context, studentID int64, status models.BookingStatus) (int64, error) {
	args := m.Called(ctx, studentID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsStore) CountAvailableListings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
