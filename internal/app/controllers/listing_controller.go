package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// ListingController handles listing lifecycle and search
type ListingController struct {
	listingService *services.ListingService
}

// NewListingController creates a new ListingController
func NewListingController(listingService *services.ListingService) *ListingController {
	return &ListingController{listingService: listingService}
}

// Create publishes a new listing
// @Summary Create a listing
// @Description Publishes a listing for a verified landlord. New listings await admin verification before appearing in search.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateListingRequest true "Listing payload"
// @Success 201 {object} dto.APIResponse{data=dto.CreateListingResponse}
// @Failure 403 {object} dto.ErrorResponse "Landlord not verified"
// @Router /listings [post]
func (c *ListingController) Create(ctx *gin.Context) {
	var req dto.CreateListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.listingService.Create(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Listing created"))
}

// List searches verified listings
// @Summary Browse listings
// @Description Returns verified listings. Status defaults to available.
// @Tags listings
// @Produce json
// @Param location query string false "Location substring"
// @Param status query string false "Listing status"
// @Param landlord_id query int false "Filter by landlord"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param max_distance query number false "Maximum distance to campus"
// @Param sort query string false "price_asc, price_desc, distance or newest"
// @Success 200 {object} dto.APIResponse{data=[]models.ListingDetail}
// @Router /listings [get]
func (c *ListingController) List(ctx *gin.Context) {
	var filter dto.ListingFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	listings, err := c.listingService.Search(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listings, ""))
}

// Search performs a free-text search
// @Summary Search listings
// @Tags listings
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.ListingDetail}
// @Router /search [get]
func (c *ListingController) Search(ctx *gin.Context) {
	listings, err := c.listingService.TextSearch(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listings, ""))
}

// Get returns one listing with landlord contact details
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} dto.APIResponse{data=models.ListingDetail}
// @Failure 404 {object} dto.ErrorResponse
// @Router /listings/{id} [get]
func (c *ListingController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	listing, err := c.listingService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listing, ""))
}

// Update applies a partial update to an owned listing
// @Summary Update a listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owned"
// @Router /listings/{id} [put]
func (c *ListingController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.listingService.Update(ctx.Request.Context(), middleware.CallerID(ctx), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Listing updated"))
}

// Delete removes an owned listing
// @Summary Delete a listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owned"
// @Router /listings/{id} [delete]
func (c *ListingController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.listingService.Delete(ctx.Request.Context(), middleware.CallerID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Listing deleted"))
}

// Verify marks a listing admin-verified
// @Summary Verify a listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 404 {object} dto.ErrorResponse
// @Router /listings/{id}/verify [put]
func (c *ListingController) Verify(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.listingService.Verify(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Listing verified"))
}
