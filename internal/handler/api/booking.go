package api

import (
	"errors"
	"fmt"
	"net/http"

	"coworking-booking/internal/audit"
	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/rules"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	sink            audit.Sink
	cfg             config.BookingConfig
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	sink audit.Sink,
	cfg config.BookingConfig,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		sink:            sink,
		cfg:             cfg,
	}
}

// @Summary Create booking
// @Description Book a time slot, subject to capacity, duration and overlap rules
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.Message
// @Failure 406 {object} resdto.Message
// @Failure 422 {object} resdto.FieldFailure
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body is treated as an empty submission so the caller
		// still gets the full per-field error map.
		req = reqdto.CreateBookingRequest{}
	}

	if err := h.bookingCommands.SubmitBooking(c.Request.Context(), req); err != nil {
		h.rejectSubmission(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Success("Booking made successfully"))
}

func (h *BookingHandler) rejectSubmission(c *gin.Context, err error) {
	var vErr *rules.ValidationError
	var body any
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &vErr):
		status = http.StatusUnprocessableEntity
		body = resdto.Invalid(invalidDataMessage, vErr.Fields)
	case errs.Is(err, errs.ErrCapacityExceeded):
		status = http.StatusNotAcceptable
		body = resdto.Error("Maximum number of bookings reached for the given date")
	case errs.Is(err, errs.ErrDurationExceeded):
		status = http.StatusNotAcceptable
		body = resdto.Error(fmt.Sprintf(
			"Booking duration exceeds maximum allowed duration of %d minutes",
			h.cfg.MaxDurationMinutes,
		))
	case errs.Is(err, errs.ErrBookingOverlap):
		status = http.StatusNotAcceptable
		body = resdto.Error("Booking time overlaps with existing bookings")
	default:
		body = resdto.Error("Internal server error")
	}

	recordRejection(c, h.sink, audit.CategoryBooking, "CreateBooking", body)
	httperr.AbortWithError(c, status, err, body)
}

// @Summary List bookings
// @Description List the bookings of a date with renter contact data
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (Y-m-d)"
// @Success 200 {array} queries.BookingView
// @Failure 422 {object} resdto.FieldFailure
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date := c.Query("date")

	views, err := h.bookingQueries.ListBookingsForDate(c.Request.Context(), date)
	if err != nil {
		var vErr *rules.ValidationError
		var body any
		status := http.StatusInternalServerError

		if errors.As(err, &vErr) {
			status = http.StatusUnprocessableEntity
			body = resdto.Invalid(invalidDataMessage, vErr.Fields)
		} else {
			body = resdto.Error("Internal server error")
		}

		recordRejection(c, h.sink, audit.CategoryBooking, "ListBookings", body)
		httperr.AbortWithError(c, status, err, body)
		return
	}

	c.JSON(http.StatusOK, views)
}
