package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// VerificationController handles both verification workflows
type VerificationController struct {
	verificationService *services.VerificationService
}

// NewVerificationController creates a new VerificationController
func NewVerificationController(verificationService *services.VerificationService) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

// Submit files a landlord document for admin review
// @Summary Submit a verification request
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitVerificationRequest true "Document payload"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitVerificationResponse}
// @Failure 400 {object} dto.ErrorResponse "Duplicate or invalid type"
// @Router /verifications [post]
func (c *VerificationController) Submit(ctx *gin.Context) {
	var req dto.SubmitVerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.verificationService.Submit(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Verification request submitted"))
}

// List returns the admin review queue
// @Summary List verification requests
// @Description Returns the review queue with subject details. Status defaults to pending.
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.APIResponse{data=[]models.VerificationDetail}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /verifications [get]
func (c *VerificationController) List(ctx *gin.Context) {
	details, err := c.verificationService.ListWithStatus(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details, ""))
}

// ListMine returns the caller's own submissions
// @Summary List own verification requests
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.VerificationDetail}
// @Router /verifications/my [get]
func (c *VerificationController) ListMine(ctx *gin.Context) {
	details, err := c.verificationService.ListOwn(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details, ""))
}

// Review records an admin decision
// @Summary Review a verification request
// @Description Approves or rejects a pending request. Approval marks the landlord verified.
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Verification ID"
// @Param request body dto.ReviewRequest true "Decision payload"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Already reviewed"
// @Failure 404 {object} dto.ErrorResponse
// @Router /verification/{id}/review [put]
func (c *VerificationController) Review(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.verificationService.Review(ctx.Request.Context(), middleware.CallerID(ctx), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Verification reviewed"))
}

// SubmitStudent files a student document for landlord review
// @Summary Submit a student verification request
// @Tags student-verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitStudentVerificationRequest true "Document payload"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitStudentVerificationResponse}
// @Failure 400 {object} dto.ErrorResponse "Pending request already exists"
// @Failure 404 {object} dto.ErrorResponse "Landlord not found"
// @Router /student-verification/request [post]
func (c *VerificationController) SubmitStudent(ctx *gin.Context) {
	var req dto.SubmitStudentVerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.verificationService.SubmitStudent(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Verification request submitted"))
}

// ListStudentRequests returns requests addressed to the landlord
// @Summary List incoming student verification requests
// @Tags student-verifications
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentVerificationDetail}
// @Router /student-verification/requests [get]
func (c *VerificationController) ListStudentRequests(ctx *gin.Context) {
	details, err := c.verificationService.ListStudentForLandlord(ctx.Request.Context(), middleware.CallerID(ctx), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details, ""))
}

// ListStudentMine returns the student's own requests
// @Summary List own student verification requests
// @Tags student-verifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentVerificationDetail}
// @Router /student-verification/my [get]
func (c *VerificationController) ListStudentMine(ctx *gin.Context) {
	details, err := c.verificationService.ListStudentOwn(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details, ""))
}

// ReviewStudent records a landlord decision
// @Summary Review a student verification request
// @Description Approves or rejects a pending request addressed to the caller. Approval marks the student verified.
// @Tags student-verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ReviewRequest true "Decision payload"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Already reviewed"
// @Failure 404 {object} dto.ErrorResponse
// @Router /student-verification/{id}/review [put]
func (c *VerificationController) ReviewStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.verificationService.ReviewStudent(ctx.Request.Context(), middleware.CallerID(ctx), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Verification reviewed"))
}
