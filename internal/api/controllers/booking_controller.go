package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"optiqa/internal/models/request_models"
	"optiqa/internal/services"
	"optiqa/pkg/utils"
)

const defaultCalendarDays = 10

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

func (b *BookingController) ListDaysHandler(c *gin.Context) {
	days := defaultCalendarDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 30 {
			utils.RespondError(c, http.StatusBadRequest, "days must be between 1 and 30")
			return
		}
		days = parsed
	}
	utils.RespondSuccess(c, b.bookingService.ListUpcomingBusinessDays(days), "")
}

func (b *BookingController) ListSlotsHandler(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		utils.RespondError(c, http.StatusBadRequest, "date is required")
		return
	}
	slots, err := b.bookingService.ListTimeSlotsFor(day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, slots, "")
}

func (b *BookingController) SelectSlotHandler(c *gin.Context) {
	var req request_models.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	confirmation, err := b.bookingService.SelectSlot(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, confirmation, "Exam booked")
}

func (b *BookingController) GetConfirmationHandler(c *gin.Context) {
	confirmation, err := b.bookingService.Confirmation(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, confirmation, "")
}
