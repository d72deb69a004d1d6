package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// BookingController handles the booking lifecycle
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Create books a listing
// @Summary Create a booking
// @Description Books an available listing for the authenticated student and holds the listing.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} dto.APIResponse{data=dto.CreateBookingResponse}
// @Failure 400 {object} dto.ErrorResponse "Listing unavailable or duplicate booking"
// @Router /bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.bookingService.Create(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Booking created"))
}

// List returns the bookings visible to the caller
// @Summary List bookings
// @Description Students see their own bookings, landlords see bookings on their listings, admins see everything.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.BookingDetail}
// @Router /bookings [get]
func (c *BookingController) List(ctx *gin.Context) {
	bookings, err := c.bookingService.ListForCaller(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(bookings, ""))
}

// Confirm accepts a pending booking
// @Summary Confirm a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Already confirmed or cancelled"
// @Failure 403 {object} dto.ErrorResponse "Not the owning landlord"
// @Router /bookings/{id}/confirm [put]
func (c *BookingController) Confirm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.bookingService.Confirm(ctx.Request.Context(), middleware.CallerID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Booking confirmed"))
}

// Cancel withdraws a booking
// @Summary Cancel a booking
// @Description Cancels a booking and releases the listing if it was still held by this booking.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Already cancelled"
// @Failure 403 {object} dto.ErrorResponse "Not a party to this booking"
// @Router /bookings/{id}/cancel [put]
func (c *BookingController) Cancel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.bookingService.Cancel(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Booking cancelled"))
}
