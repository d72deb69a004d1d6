package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

func availableListing(id, landlordID int64) *models.ListingDetail {
	return &models.ListingDetail{
		Listing: models.Listing{
			ID:         id,
			LandlordID: landlordID,
			Status:     models.ListingAvailable,
			IsVerified: true,
		},
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()
	req := &dto.CreateBookingRequest{ListingID: 7, BookingDate: "2026-09-01"}

	t.Run("books an available listing and flips its status", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listings.On("GetDetailByID", ctx, int64(7)).Return(availableListing(7, 2), nil)
		bookings.On("HasActiveForPair", ctx, int64(1), int64(7)).Return(false, nil)
		bookings.On("Create", ctx, mock.Anything, mock.AnythingOfType("*models.Booking")).
			Run(func(args mock.Arguments) {
				args.Get(2).(*models.Booking).ID = 42
			}).
			Return(int64(42), nil)
		listings.On("UpdateStatusIf", ctx, mock.Anything, int64(7), models.ListingAvailable, models.ListingBooked).
			Return(true, nil)

		resp, err := svc.Create(ctx, 1, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.BookingID)
		bookings.AssertExpectations(t)
		listings.AssertExpectations(t)
	})

	t.Run("rejects an unverified listing", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listing := availableListing(7, 2)
		listing.IsVerified = false
		listings.On("GetDetailByID", ctx, int64(7)).Return(listing, nil)

		_, err := svc.Create(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrListingUnavailable)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a duplicate booking for the same pair", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listings.On("GetDetailByID", ctx, int64(7)).Return(availableListing(7, 2), nil)
		bookings.On("HasActiveForPair", ctx, int64(1), int64(7)).Return(true, nil)

		_, err := svc.Create(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateBooking)
	})

	t.Run("maps the unique-pair violation from a concurrent create", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listings.On("GetDetailByID", ctx, int64(7)).Return(availableListing(7, 2), nil)
		bookings.On("HasActiveForPair", ctx, int64(1), int64(7)).Return(false, nil)
		pairViolation := &pgconn.PgError{Code: "23505", ConstraintName: "uq_bookings_active_pair"}
		bookings.On("Create", ctx, mock.Anything, mock.Anything).Return(int64(0), pairViolation)

		_, err := svc.Create(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateBooking)
	})

	t.Run("loses the race when the guarded flip affects no rows", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listings.On("GetDetailByID", ctx, int64(7)).Return(availableListing(7, 2), nil)
		bookings.On("HasActiveForPair", ctx, int64(1), int64(7)).Return(false, nil)
		bookings.On("Create", ctx, mock.Anything, mock.Anything).Return(int64(42), nil)
		listings.On("UpdateStatusIf", ctx, mock.Anything, int64(7), models.ListingAvailable, models.ListingBooked).
			Return(false, nil)

		_, err := svc.Create(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrListingUnavailable)
	})

	t.Run("rejects a malformed booking date", func(t *testing.T) {
		svc := NewBookingService(new(mockBookingStore), new(mockListingStore), &fakeTxRunner{})

		_, err := svc.Create(ctx, 1, &dto.CreateBookingRequest{ListingID: 7, BookingDate: "01/09/2026"})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown listing is not found", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		listings.On("GetDetailByID", ctx, int64(7)).Return(nil, nil)

		_, err := svc.Create(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
	})
}

func TestBookingConfirm(t *testing.T) {
	ctx := context.Background()

	pendingOwnership := func() *models.BookingOwnership {
		return &models.BookingOwnership{
			Booking:    models.Booking{ID: 42, StudentID: 1, ListingID: 7, Status: models.BookingPending},
			LandlordID: 2,
		}
	}

	t.Run("landlord confirms a pending booking", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(pendingOwnership(), nil)
		bookings.On("SetStatusIfNot", ctx, mock.Anything, int64(42), models.BookingConfirmed, models.BookingConfirmed).
			Return(true, nil)

		assert.NoError(t, svc.Confirm(ctx, 2, 42))
		bookings.AssertExpectations(t)
	})

	t.Run("another landlord is forbidden", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(pendingOwnership(), nil)

		err := svc.Confirm(ctx, 99, 42)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("second confirm reports a conflict", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(pendingOwnership(), nil)
		bookings.On("SetStatusIfNot", ctx, mock.Anything, int64(42), models.BookingConfirmed, models.BookingConfirmed).
			Return(false, nil)

		err := svc.Confirm(ctx, 2, 42)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyConfirmed)
	})

	t.Run("cancelled bookings cannot be confirmed", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		ownership := pendingOwnership()
		ownership.Status = models.BookingCancelled
		bookings.On("GetOwnership", ctx, int64(42)).Return(ownership, nil)

		err := svc.Confirm(ctx, 2, 42)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)
	})
}

func TestBookingCancel(t *testing.T) {
	ctx := context.Background()

	ownership := func(status models.BookingStatus) *models.BookingOwnership {
		return &models.BookingOwnership{
			Booking:    models.Booking{ID: 42, StudentID: 1, ListingID: 7, Status: status},
			LandlordID: 2,
		}
	}

	t.Run("student cancels own booking and the listing is released", func(t *testing.T) {
		bookings := new(mockBookingStore)
		listings := new(mockListingStore)
		svc := NewBookingService(bookings, listings, &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(ownership(models.BookingPending), nil)
		bookings.On("SetStatusIfNot", ctx, mock.Anything, int64(42), models.BookingCancelled, models.BookingCancelled).
			Return(true, nil)
		listings.On("UpdateStatusIf", ctx, mock.Anything, int64(7), models.ListingBooked, models.ListingAvailable).
			Return(true, nil)

		assert.NoError(t, svc.Cancel(ctx, 1, models.RoleStudent, 42))
		listings.AssertExpectations(t)
	})

	t.Run("unrelated student is forbidden", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(ownership(models.BookingPending), nil)

		err := svc.Cancel(ctx, 55, models.RoleStudent, 42)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("admin is not a party and is forbidden", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(ownership(models.BookingPending), nil)

		err := svc.Cancel(ctx, 999, models.RoleAdmin, 42)

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		bookings.AssertNotCalled(t, "SetStatusIfNot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second cancel reports a conflict", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("GetOwnership", ctx, int64(42)).Return(ownership(models.BookingCancelled), nil)

		err := svc.Cancel(ctx, 1, models.RoleStudent, 42)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)
	})
}

func TestBookingListForCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches by role", func(t *testing.T) {
		bookings := new(mockBookingStore)
		svc := NewBookingService(bookings, new(mockListingStore), &fakeTxRunner{})

		bookings.On("ListForStudent", ctx, int64(1)).Return([]models.BookingDetail{}, nil)
		bookings.On("ListForLandlord", ctx, int64(2)).Return([]models.BookingDetail{}, nil)
		bookings.On("ListAll", ctx).Return([]models.BookingDetail{}, nil)

		_, err := svc.ListForCaller(ctx, 1, models.RoleStudent)
		assert.NoError(t, err)
		_, err = svc.ListForCaller(ctx, 2, models.RoleLandlord)
		assert.NoError(t, err)
		_, err = svc.ListForCaller(ctx, 3, models.RoleAdmin)
		assert.NoError(t, err)

		bookings.AssertExpectations(t)
	})
}
