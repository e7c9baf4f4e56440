package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hmsops/hotel_management_app/internal/apperrors"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// reservationHandler handles HTTP requests related to the reservation ledger.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

// newReservationHandler creates a new reservationHandler.
func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{
		reservationService: rs,
	}
}

// registerReservationRoutes registers routes related to reservations.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.GET("", h.listReservations)
		reservations.GET("/:id", h.getReservation)
		reservations.DELETE("/:id", h.cancelReservation)
	}
}

func parseReservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reservation ID must be a positive integer"})
		return 0, false
	}
	return id, true
}

// listReservations godoc
// @Summary List all reservations
// @Description Retrieves the reservation ledger ordered by check-in date
// @Tags reservations
// @Produce  json
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 500 {object} map[string]string "Failed to list reservations"
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reservations, err := h.reservationService.ListReservations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reservations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations))
}

// getReservation godoc
// @Summary Get a reservation by ID
// @Description Retrieves one ledger entry
// @Tags reservations
// @Produce  json
// @Param   id path int true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} map[string]string "Invalid reservation ID"
// @Failure 404 {object} map[string]string "Reservation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve reservation"
// @Router /reservations/{id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("reservation_id", reservationID))

	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reservation not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		} else {
			logger.Error("Failed to get reservation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reservation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// cancelReservation godoc
// @Summary Cancel a reservation
// @Description Removes a ledger entry; its id is never reused
// @Tags reservations
// @Produce  json
// @Param   id path int true "Reservation ID"
// @Success 204 "Reservation cancelled"
// @Failure 400 {object} map[string]string "Invalid reservation ID"
// @Failure 404 {object} map[string]string "Reservation not found"
// @Failure 500 {object} map[string]string "Failed to cancel reservation"
// @Router /reservations/{id} [delete]
func (h *reservationHandler) cancelReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("reservation_id", reservationID))
	logger.Info("Received request to cancel reservation")

	err := h.reservationService.CancelReservation(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reservation not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		} else {
			logger.Error("Failed to cancel reservation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reservation"})
		}
		return
	}

	logger.Info("Reservation cancelled successfully")
	c.Status(http.StatusNoContent)
}
