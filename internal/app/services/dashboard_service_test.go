package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees platform-wide counters", func(t *testing.T) {
		stats := new(mockStatsStore)
		svc := NewDashboardService(stats)

		stats.On("CountUsers", ctx).Return(int64(120), nil)
		stats.On("CountListings", ctx).Return(int64(40), nil)
		stats.On("CountBookings", ctx).Return(int64(65), nil)
		stats.On("CountPendingVerifications", ctx).Return(int64(3), nil)

		got, err := svc.Stats(ctx, 9, models.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, &dto.AdminStats{
			TotalUsers:           120,
			TotalListings:        40,
			TotalBookings:        65,
			PendingVerifications: 3,
		}, got)
	})

	t.Run("landlord revenue is formatted as Kenyan shillings", func(t *testing.T) {
		stats := new(mockStatsStore)
		svc := NewDashboardService(stats)

		stats.On("CountListingsByLandlord", ctx, int64(2)).Return(int64(4), nil)
		stats.On("CountBookingsByLandlord", ctx, int64(2)).Return(int64(10), nil)
		stats.On("CountBookingsByLandlordWithStatus", ctx, int64(2), models.BookingPending).Return(int64(2), nil)
		stats.On("SumConfirmedRevenueByLandlord", ctx, int64(2)).Return(25500.5, nil)

		got, err := svc.Stats(ctx, 2, models.RoleLandlord)

		assert.NoError(t, err)
		landlord, ok := got.(*dto.LandlordStats)
		assert.True(t, ok)
		assert.Equal(t, "KES 25,500.5", landlord.TotalRevenue)
		assert.Equal(t, int64(4), landlord.MyListings)
	})

	t.Run("student sees own bookings and open supply", func(t *testing.T) {
		stats := new(mockStatsStore)
		svc := NewDashboardService(stats)

		stats.On("CountBookingsByStudent", ctx, int64(1)).Return(int64(2), nil)
		stats.On("CountAvailableListings", ctx).Return(int64(17), nil)
		stats.On("CountBookingsByStudentWithStatus", ctx, int64(1), models.BookingConfirmed).Return(int64(1), nil)
		stats.On("CountBookingsByStudentWithStatus", ctx, int64(1), models.BookingPending).Return(int64(1), nil)

		got, err := svc.Stats(ctx, 1, models.RoleStudent)

		assert.NoError(t, err)
		assert.Equal(t, &dto.StudentStats{
			MyBookings:        2,
			AvailableListings: 17,
			ConfirmedBookings: 1,
			PendingBookings:   1,
		}, got)
	})

	t.Run("revenue formatting groups thousands", func(t *testing.T) {
		cases := map[float64]string{
			0:          "KES 0",
			950:        "KES 950",
			12500:      "KES 12,500",
			25500.5:    "KES 25,500.5",
			1234567.25: "KES 1,234,567.25",
		}
		for amount, want := range cases {
			assert.Equal(t, want, formatKES(amount))
		}
	})

	t.Run("unknown role is forbidden", func(t *testing.T) {
		svc := NewDashboardService(new(mockStatsStore))

		_, err := svc.Stats(ctx, 1, models.RoleType("guest"))

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
