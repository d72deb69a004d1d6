package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/dberrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
)

// BookingService handles the booking lifecycle
type BookingService struct {
	bookings BookingStore
	listings ListingStore
	tx       TxRunner
}

// NewBookingService creates a new BookingService
func NewBookingService(bookings BookingStore, listings ListingStore, tx TxRunner) *BookingService {
	return &BookingService{
		bookings: bookings,
		listings: listings,
		tx:       tx,
	}
}

// Create books a listing for a student. The booking insert and the listing
// status flip commit atomically; the guarded flip loses cleanly when two
// students race for the same listing.
func (s *BookingService) Create(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	bookingDate, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return nil, apperrors.NewValidationError("booking_date must be formatted as YYYY-MM-DD")
	}

	listing, err := s.listings.GetDetailByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperrors.ErrListingNotFound
	}
	if !listing.IsVerified || listing.Status != models.ListingAvailable {
		return nil, apperrors.ErrListingUnavailable
	}

	hasActive, err := s.bookings.HasActiveForPair(ctx, studentID, req.ListingID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, apperrors.ErrDuplicateBooking
	}

	booking := &models.Booking{
		StudentID:   studentID,
		ListingID:   req.ListingID,
		BookingDate: bookingDate,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.bookings.Create(ctx, tx, booking); err != nil {
			// The pair check above races with concurrent creates; the
			// partial unique index is the authority.
			if dberrors.IsUniqueViolationOn(err, "uq_bookings_active_pair") {
				return apperrors.ErrDuplicateBooking
			}
			return err
		}
		flipped, err := s.listings.UpdateStatusIf(ctx, tx, req.ListingID, models.ListingAvailable, models.ListingBooked)
		if err != nil {
			return err
		}
		if !flipped {
			return apperrors.ErrListingUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("bookingID", booking.ID).Int64("studentID", studentID).
		Int64("listingID", req.ListingID).Msg("Booking created")
	return &dto.CreateBookingResponse{BookingID: booking.ID}, nil
}

// Confirm accepts a pending booking on behalf of the owning landlord
func (s *BookingService) Confirm(ctx context.Context, landlordID, bookingID int64) error {
	ownership, err := s.bookings.GetOwnership(ctx, bookingID)
	if err != nil {
		return err
	}
	if ownership == nil {
		return apperrors.ErrBookingNotFound
	}
	if ownership.LandlordID != landlordID {
		return apperrors.NewForbiddenError("you can only confirm bookings on your own listings")
	}
	if ownership.Status == models.BookingCancelled {
		return apperrors.ErrAlreadyCancelled
	}

	// The guard re-checks the status inside the update, so a concurrent
	// confirm surfaces as a conflict rather than a silent double-write.
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		confirmed, err := s.bookings.SetStatusIfNot(ctx, tx, bookingID, models.BookingConfirmed, models.BookingConfirmed)
		if err != nil {
			return err
		}
		if !confirmed {
			return apperrors.ErrAlreadyConfirmed
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("bookingID", bookingID).Int64("landlordID", landlordID).Msg("Booking confirmed")
	return nil
}

// Cancel withdraws a booking. Only the booking's student or the listing's
// landlord may cancel. When the listing is still held by this booking it is
// released atomically.
func (s *BookingService) Cancel(ctx context.Context, callerID int64, role models.RoleType, bookingID int64) error {
	ownership, err := s.bookings.GetOwnership(ctx, bookingID)
	if err != nil {
		return err
	}
	if ownership == nil {
		return apperrors.ErrBookingNotFound
	}
	if !canCancel(callerID, role, ownership) {
		return apperrors.NewForbiddenError("you are not a party to this booking")
	}
	if ownership.Status == models.BookingCancelled {
		return apperrors.ErrAlreadyCancelled
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cancelled, err := s.bookings.SetStatusIfNot(ctx, tx, bookingID, models.BookingCancelled, models.BookingCancelled)
		if err != nil {
			return err
		}
		if !cancelled {
			return apperrors.ErrAlreadyCancelled
		}
		// Release the listing only if it is still in the booked state.
		_, err = s.listings.UpdateStatusIf(ctx, tx, ownership.ListingID, models.ListingBooked, models.ListingAvailable)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("bookingID", bookingID).Int64("userID", callerID).Msg("Booking cancelled")
	return nil
}

// ListForCaller retrieves the bookings visible to the caller's role
func (s *BookingService) ListForCaller(ctx context.Context, callerID int64, role models.RoleType) ([]models.BookingDetail, error) {
	switch role {
	case models.RoleStudent:
		return s.bookings.ListForStudent(ctx, callerID)
	case models.RoleLandlord:
		return s.bookings.ListForLandlord(ctx, callerID)
	case models.RoleAdmin:
		return s.bookings.ListAll(ctx)
	default:
		return nil, apperrors.NewForbiddenError("unknown role")
	}
}

func canCancel(callerID int64, role models.RoleType, ownership *models.BookingOwnership) bool {
	switch role {
	case models.RoleStudent:
		return ownership.StudentID == callerID
	case models.RoleLandlord:
		return ownership.LandlordID == callerID
	}
	return false
}
