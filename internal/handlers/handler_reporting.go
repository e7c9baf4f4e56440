package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// reportingHandler handles HTTP requests for occupancy and revenue reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/occupancy", h.getOccupancySummary)
		reports.GET("/revenue", h.getRevenueSummary)
	}
}

// getOccupancySummary godoc
// @Summary Occupancy summary
// @Description Counts available and occupied rooms and queued reservations, optionally as of a given date
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.OccupancySummaryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to generate summary"
// @Router /reports/occupancy [get]
func (h *reportingHandler) getOccupancySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be a date in YYYY-MM-DD format"})
			return
		}
		asOf = parsed
	}

	summary, err := h.reportingService.OccupancySummary(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate occupancy summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOccupancySummaryResponse(summary, asOf))
}

// getRevenueSummary godoc
// @Summary Revenue summary
// @Description Totals collected and outstanding balances per room and overall
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.RevenueSummaryResponse
// @Failure 500 {object} map[string]string "Failed to generate summary"
// @Router /reports/revenue [get]
func (h *reportingHandler) getRevenueSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.RevenueSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate revenue summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueSummaryResponse(summary))
}
