package services

import (
	"context"
	"strings"
	"time"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// textSearchLimit caps the free-text search result set
const textSearchLimit = 20

// ListingService handles listing lifecycle and search
type ListingService struct {
	listings ListingStore
	users    UserStore
}

// NewListingService creates a new ListingService
func NewListingService(listings ListingStore, users UserStore) *ListingService {
	return &ListingService{
		listings: listings,
		users:    users,
	}
}

// Create publishes a new listing for a verified landlord. The verification
// flag is re-read from the store rather than trusted from the token.
func (s *ListingService) Create(ctx context.Context, landlordID int64, req *dto.CreateListingRequest) (*dto.CreateListingResponse, error) {
	verified, err := s.users.IsVerified(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, apperrors.ErrLandlordNotVerified
	}

	availableFrom, err := parseOptionalDate(req.AvailableFrom)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		LandlordID:        landlordID,
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		Price:             req.Price,
		Amenities:         req.Amenities,
		ProximityToCampus: req.ProximityToCampus,
		AvailableFrom:     availableFrom,
	}

	listingID, err := s.listings.Create(ctx, listing)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("listingID", listingID).Int64("landlordID", landlordID).Msg("Listing created")
	return &dto.CreateListingResponse{ListingID: listingID}, nil
}

// Search retrieves verified listings matching the public filters. An empty
// status filter defaults to available listings; any other value filters
// literally.
func (s *ListingService) Search(ctx context.Context, filter *dto.ListingFilter) ([]models.ListingDetail, error) {
	if filter.Status == "" {
		filter.Status = string(models.ListingAvailable)
	}
	return s.listings.Search(ctx, filter)
}

// TextSearch retrieves verified listings matching a free-text term
func (s *ListingService) TextSearch(ctx context.Context, term string) ([]models.ListingDetail, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.NewValidationError("search term is required")
	}
	return s.listings.TextSearch(ctx, term, textSearchLimit)
}

// GetByID retrieves a single listing with landlord contact details
func (s *ListingService) GetByID(ctx context.Context, id int64) (*models.ListingDetail, error) {
	detail, err := s.listings.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperrors.ErrListingNotFound
	}
	return detail, nil
}

// Update applies a partial update to a listing the landlord owns. Unknown ids
// and foreign listings are both reported as not found.
func (s *ListingService) Update(ctx context.Context, landlordID, id int64, req *dto.UpdateListingRequest) error {
	if req.IsEmpty() {
		return apperrors.NewValidationError("no fields to update")
	}
	if req.AvailableFrom != nil {
		if _, err := parseOptionalDate(req.AvailableFrom); err != nil {
			return err
		}
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ListingAvailable, models.ListingBooked, models.ListingUnavailable:
		default:
			return apperrors.NewValidationError("invalid listing status")
		}
	}

	listing, err := s.listings.GetForLandlord(ctx, id, landlordID)
	if err != nil {
		return err
	}
	if listing == nil {
		return apperrors.ErrListingNotFound
	}

	return s.listings.Update(ctx, id, req)
}

// Delete removes a listing the landlord owns
func (s *ListingService) Delete(ctx context.Context, landlordID, id int64) error {
	listing, err := s.listings.GetForLandlord(ctx, id, landlordID)
	if err != nil {
		return err
	}
	if listing == nil {
		return apperrors.ErrListingNotFound
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("listingID", id).Int64("landlordID", landlordID).Msg("Listing deleted")
	return nil
}

// Verify marks a listing admin-verified, making it publicly searchable
func (s *ListingService) Verify(ctx context.Context, id int64) error {
	ok, err := s.listings.MarkVerified(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrListingNotFound
	}

	logger.Info().Int64("listingID", id).Msg("Listing verified")
	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	return &parsed, nil
}
