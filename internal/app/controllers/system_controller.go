package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

// SystemController serves health and diagnostics endpoints
type SystemController struct {
	db        *pgxpool.Pool
	startedAt time.Time
}

// NewSystemController creates a new SystemController
func NewSystemController(db *pgxpool.Pool) *SystemController {
	return &SystemController{
		db:        db,
		startedAt: time.Now(),
	}
}

// Health reports process liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"status":  "ok",
		"service": "accommodation-finder",
		"uptime":  time.Since(c.startedAt).String(),
	}, ""))
}

// TestDB verifies database connectivity with a trivial round trip
// @Summary Database connectivity check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /test-db [get]
func (c *SystemController) TestDB(ctx *gin.Context) {
	var result int
	if err := c.db.QueryRow(ctx.Request.Context(), "SELECT 1 + 1").Scan(&result); err != nil {
		middleware.HandleAPIError(ctx, &apperrors.CustomError{Err: err, Message: "database check failed"})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"result": result}, "Database connection healthy"))
}
