package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

// DashboardService serves role-specific dashboard counters
type DashboardService struct {
	stats StatsStore
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(stats StatsStore) *DashboardService {
	return &DashboardService{stats: stats}
}

// Stats returns the dashboard payload for the caller's role
func (s *DashboardService) Stats(ctx context.Context, userID int64, role models.RoleType) (any, error) {
	switch role {
	case models.RoleAdmin:
		return s.adminStats(ctx)
	case models.RoleLandlord:
		return s.landlordStats(ctx, userID)
	case models.RoleStudent:
		return s.studentStats(ctx, userID)
	default:
		return nil, apperrors.NewForbiddenError("unknown role")
	}
}

func (s *DashboardService) adminStats(ctx context.Context) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	var err error

	if stats.TotalUsers, err = s.stats.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalListings, err = s.stats.CountListings(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.stats.CountBookings(ctx); err != nil {
		return nil, err
	}
	if stats.PendingVerifications, err = s.stats.CountPendingVerifications(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *DashboardService) landlordStats(ctx context.Context, landlordID int64) (*dto.LandlordStats, error) {
	var stats dto.LandlordStats
	var err error

	if stats.MyListings, err = s.stats.CountListingsByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.stats.CountBookingsByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.stats.CountBookingsByLandlordWithStatus(ctx, landlordID, models.BookingPending); err != nil {
		return nil, err
	}

	revenue, err := s.stats.SumConfirmedRevenueByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = formatKES(revenue)

	return &stats, nil
}

// formatKES renders an amount with thousands separators and up to three
// fraction digits, e.g. "KES 12,500" or "KES 25,500.5".
func formatKES(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := sign + grouped.String()
	if hasFrac {
		out += "." + fracPart
	}
	return fmt.Sprintf("KES %s", out)
}

func (s *DashboardService) studentStats(ctx context.Context, studentID int64) (*dto.StudentStats, error) {
	var stats dto.StudentStats
	var err error

	if stats.MyBookings, err = s.stats.CountBookingsByStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if stats.AvailableListings, err = s.stats.CountAvailableListings(ctx); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = s.stats.CountBookingsByStudentWithStatus(ctx, studentID, models.BookingConfirmed); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.stats.CountBookingsByStudentWithStatus(ctx, studentID, models.BookingPending); err != nil {
		return nil, err
	}

	return &stats, nil
}
