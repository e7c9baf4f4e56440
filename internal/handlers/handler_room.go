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

// roomHandler handles HTTP requests related to the room inventory.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{
		roomService: rs,
	}
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.GET("/available", h.listAvailableRooms)
		rooms.GET("/occupied", h.listOccupiedRooms)
		rooms.GET("/:number", h.getRoom)
	}
}

// parseRoomNumber extracts and validates the room number path parameter.
func parseRoomNumber(c *gin.Context) (int, bool) {
	roomNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil || roomNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Room number must be a positive integer"})
		return 0, false
	}
	return roomNumber, true
}

// listRooms godoc
// @Summary List all rooms
// @Description Retrieves the full room inventory with occupancy and derived status
// @Tags rooms
// @Produce  json
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 500 {object} map[string]string "Failed to list rooms"
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	views, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rooms from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomsResponse(views))
}

// listAvailableRooms godoc
// @Summary List available rooms
// @Description Retrieves rooms with no occupant covering today and no queued reservations
// @Tags rooms
// @Produce  json
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 500 {object} map[string]string "Failed to list rooms"
// @Router /rooms/available [get]
func (h *roomHandler) listAvailableRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	views, err := h.roomService.ListAvailableRooms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list available rooms from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomsResponse(views))
}

// listOccupiedRooms godoc
// @Summary List occupied rooms
// @Description Retrieves rooms whose occupant's stay covers today
// @Tags rooms
// @Produce  json
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 500 {object} map[string]string "Failed to list rooms"
// @Router /rooms/occupied [get]
func (h *roomHandler) listOccupiedRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	views, err := h.roomService.ListOccupiedRooms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list occupied rooms from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoomsResponse(views))
}

// getRoom godoc
// @Summary Get a room by number
// @Description Retrieves one room with its occupancy and derived status
// @Tags rooms
// @Produce  json
// @Param   number path int true "Room Number"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid room number"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to retrieve room"
// @Router /rooms/{number} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int("room_number", roomNumber))

	view, err := h.roomService.GetRoom(c.Request.Context(), roomNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Room not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			logger.Error("Failed to get room from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(view))
}
