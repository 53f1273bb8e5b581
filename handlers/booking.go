package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"classbook/models"
	"classbook/services/booking"
	"classbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the presentation controller over HTTP.
type BookingHandler struct {
	Controller *booking.Controller
	Breakpoint int
	Locale     string
}

func NewBookingHandler(controller *booking.Controller, breakpoint int, locale string) *BookingHandler {
	if breakpoint <= 0 {
		breakpoint = booking.DefaultMobileBreakpoint
	}
	return &BookingHandler{
		Controller: controller,
		Breakpoint: breakpoint,
		Locale:     locale,
	}
}

// ListBookings handles GET /api/bookings?width=N.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	schedule, err := h.Controller.LoadAndRender(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := *schedule
	out.Calendar = booking.CalendarOptionsFor(widthParam(c), h.Breakpoint, h.Locale)
	c.JSON(http.StatusOK, out)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Controller.Submit(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondSubmit(c, resp)
}

// ConfirmPending handles POST /api/bookings/pending/:id/confirm.
func (h *BookingHandler) ConfirmPending(c *gin.Context) {
	resp, err := h.Controller.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondSubmit(c, resp)
}

// DeclinePending handles DELETE /api/bookings/pending/:id.
func (h *BookingHandler) DeclinePending(c *gin.Context) {
	resp, err := h.Controller.Decline(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BookingDetail handles POST /api/bookings/detail. The body is the
// extendedProps of a calendar event.
func (h *BookingHandler) BookingDetail(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking.ToDetail(b))
}

// CalendarOptions handles GET /api/calendar/options?width=N.
func (h *BookingHandler) CalendarOptions(c *gin.Context) {
	c.JSON(http.StatusOK, booking.CalendarOptionsFor(widthParam(c), h.Breakpoint, h.Locale))
}

// CalendarFeed handles GET /api/bookings/calendar.ics.
func (h *BookingHandler) CalendarFeed(c *gin.Context) {
	if _, err := h.Controller.LoadAndRender(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	feed := booking.ExportICS(h.Controller.Cached(), time.Now().UTC(), getLogger(c))
	c.Header("Content-Disposition", `attachment; filename="bookings.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *BookingHandler) respondSubmit(c *gin.Context, resp *models.SubmitResponse) {
	switch resp.Status {
	case models.SubmitStatusConfirmationRequired:
		c.JSON(http.StatusAccepted, resp)
	case models.SubmitStatusCreated:
		c.JSON(http.StatusCreated, resp)
	default:
		c.JSON(http.StatusOK, resp)
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	logger := getLogger(c)

	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONValidationError(c, vErr.Kind, vErr.Field, vErr.Message)
		return
	}
	var storeErr *booking.StoreError
	if errors.As(err, &storeErr) {
		logger.Error("booking store failure", zap.String("kind", storeErr.Kind), zap.Error(storeErr.Err))
		c.JSON(http.StatusBadGateway, utils.ErrorResponse{Message: storeErr.Err.Error(), Kind: storeErr.Kind})
		return
	}
	if errors.Is(err, booking.ErrPendingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "pending booking not found or expired", c.Param("id"))
		return
	}
	logger.Error("booking request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}

// widthParam reads ?width=N; anything unparsable counts as unknown (0).
func widthParam(c *gin.Context) int {
	w, err := strconv.Atoi(c.Query("width"))
	if err != nil || w < 0 {
		return 0
	}
	return w
}
