package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmsops/hotel_management_app/internal/apperrors"
	portssvc "github.com/hmsops/hotel_management_app/internal/core/ports/services"
	"github.com/hmsops/hotel_management_app/internal/core/services"
	"github.com/hmsops/hotel_management_app/internal/dto"
	"github.com/hmsops/hotel_management_app/internal/middleware"
)

// bookingHandler handles HTTP requests that mutate occupancy: registering
// stays, checking out and sweeping promotions.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	rg.POST("/bookings", h.registerStay)
	rg.POST("/rooms/:number/checkout", h.checkOut)
	rg.POST("/promotions/sweep", h.sweepPromotions)
}

// registerStay godoc
// @Summary Register a stay
// @Description Checks the proposed dates against the room's occupant and queued reservations; on success checks the guest in (check-in today or earlier) or queues a reservation
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.RegisterStayRequest true "Stay details"
// @Success 201 {object} dto.RegisterStayResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 409 {object} dto.ConflictResponse "Date conflict with existing stays"
// @Failure 500 {object} map[string]string "Failed to register stay"
// @Router /bookings [post]
func (h *bookingHandler) registerStay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterStay", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int("room_number", req.RoomNumber))
	logger.Info("Received request to register stay", slog.String("guest", req.GuestName))

	registration, err := h.bookingService.RegisterStay(c.Request.Context(), req)
	if err != nil {
		var conflictErr *services.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("Booking rejected due to date conflicts", slog.Int("conflicts", len(conflictErr.Conflicts)))
			c.JSON(http.StatusConflict, dto.ToConflictResponse(conflictErr.Conflicts))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error registering stay", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Room not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Room %d not found", req.RoomNumber)})
		default:
			logger.Error("Failed to register stay in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register stay"})
		}
		return
	}

	logger.Info("Stay registered successfully", slog.String("placement", string(registration.Kind)))
	c.JSON(http.StatusCreated, dto.ToRegisterStayResponse(registration))
}

// checkOut godoc
// @Summary Check out a room
// @Description Applies the additional payment to the occupant's balance; once cleared, frees the room and promotes the earliest due reservation
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   number path int true "Room Number"
// @Param   payment body dto.CheckoutRequest true "Additional payment"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Room not found or not occupied"
// @Failure 409 {object} map[string]string "Outstanding balance remains"
// @Failure 500 {object} map[string]string "Failed to check out"
// @Router /rooms/{number}/checkout [post]
func (h *bookingHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int("room_number", roomNumber))

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckOut", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to check out room")

	result, err := h.bookingService.CheckOut(c.Request.Context(), roomNumber, req.AdditionalPayment)
	if err != nil {
		var owingErr *services.StillOwingError
		switch {
		case errors.As(err, &owingErr):
			logger.Warn("Check-out rejected, balance remains", slog.String("remaining", owingErr.Remaining.StringFixed(2)))
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Outstanding balance must be settled before check-out",
				"remaining": owingErr.Remaining.StringFixed(2),
			})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error checking out", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Check-out target missing", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to check out in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check out"})
		}
		return
	}

	logger.Info("Room checked out successfully", slog.Bool("promotion", result.Promoted != nil))
	c.JSON(http.StatusOK, dto.ToCheckoutResponse(result))
}

// sweepPromotions godoc
// @Summary Promote due reservations
// @Description Installs the earliest due reservation into every vacant room
// @Tags bookings
// @Produce  json
// @Success 200 {object} dto.SweepResponse
// @Failure 500 {object} map[string]string "Failed to run promotion sweep"
// @Router /promotions/sweep [post]
func (h *bookingHandler) sweepPromotions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to sweep promotions")

	promoted, err := h.bookingService.PromoteDueReservations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to run promotion sweep", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run promotion sweep"})
		return
	}

	logger.Info("Promotion sweep completed", slog.Int("promoted", len(promoted)))
	c.JSON(http.StatusOK, dto.ToSweepResponse(promoted))
}
