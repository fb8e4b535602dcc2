//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/handler/api"
	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/rules"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeBookingCommands struct {
	err      error
	received *reqdto.CreateBookingRequest
}

func (f *fakeBookingCommands) SubmitBooking(_ context.Context, req reqdto.CreateBookingRequest) error {
	f.received = &req
	return f.err
}

type fakeBookingQueries struct {
	views []*queries.BookingView
	err   error
}

func (f *fakeBookingQueries) ListBookingsForDate(_ context.Context, _ string) ([]*queries.BookingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.views, nil
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeBookingCommands
	queries  *fakeBookingQueries
	recorder *audit.Recorder
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &fakeBookingCommands{}
	s.queries = &fakeBookingQueries{}
	s.recorder = audit.NewRecorder()

	handler := api.NewBookingHandler(s.commands, s.queries, s.recorder, config.NewTestConfig().Booking)
	s.router.POST("/api/bookings", handler.CreateBooking)
	s.router.GET("/api/bookings", handler.ListBookings)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) postBooking(body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *BookingHandlerTestSuite) TestCreateBookingSuccess() {
	rec := s.postBooking(gin.H{"date": "2025-06-11", "start_time": "09:00", "end_time": "09:30",
		"type": "consultancy", "firstname": "Ada", "lastname": "Lovelace"})

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("success", body["status"])
	s.Equal("Booking made successfully", body["message"])
	s.Require().NotNil(s.commands.received)
	s.Equal("2025-06-11", s.commands.received.Date)
	s.Empty(s.recorder.Events())
}

func (s *BookingHandlerTestSuite) TestCreateBookingValidationFailure() {
	s.commands.err = &rules.ValidationError{Fields: rules.FieldErrors{
		"date": {"The date field is required."},
	}}

	rec := s.postBooking(gin.H{})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	body := s.decode(rec)
	s.Equal("error", body["status"])
	fields := body["fields"].(map[string]any)
	s.Contains(fields, "date")

	events := s.recorder.Events()
	s.Require().Len(events, 1)
	s.Equal(audit.CategoryBooking, events[0].Category)
	s.Equal("CreateBooking", events[0].Operation)
	s.Contains(events[0].Payload, "The date field is required.")
}

func (s *BookingHandlerTestSuite) TestCreateBookingPolicyRejections() {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "capacity",
			err:     errs.ErrCapacityExceeded,
			message: "Maximum number of bookings reached for the given date",
		},
		{
			name:    "duration",
			err:     errs.ErrDurationExceeded,
			message: "Booking duration exceeds maximum allowed duration of 45 minutes",
		},
		{
			name:    "overlap",
			err:     errs.ErrBookingOverlap,
			message: "Booking time overlaps with existing bookings",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.commands.err = tt.err

			rec := s.postBooking(gin.H{"date": "2025-06-11"})

			s.Equal(http.StatusNotAcceptable, rec.Code)
			body := s.decode(rec)
			s.Equal("error", body["status"])
			s.Equal(tt.message, body["message"])

			events := s.recorder.Events()
			s.Require().Len(events, 1)
			s.Contains(events[0].Payload, tt.message)
		})
	}
}

func (s *BookingHandlerTestSuite) TestCreateBookingMalformedBodyBecomesEmptySubmission() {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().NotNil(s.commands.received)
	s.Equal(reqdto.CreateBookingRequest{}, *s.commands.received)
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	phone := "0123456789"
	s.queries.views = []*queries.BookingView{{
		ID:        uuid.New(),
		Date:      "2025-06-10",
		StartTime: "09:00",
		EndTime:   "09:30",
		Type:      "consultancy",
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Phone:     &phone,
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=2025-06-10", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var views []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &views))
	s.Require().Len(views, 1)
	s.Equal("09:00", views[0]["start_time"])
	s.Equal("Ada", views[0]["firstname"])
	s.Nil(views[0]["email"])
}

func (s *BookingHandlerTestSuite) TestListBookingsBadDate() {
	s.queries.err = &rules.ValidationError{Fields: rules.FieldErrors{
		"date": {"The date format must be Y-m-d."},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=junk", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	events := s.recorder.Events()
	s.Require().Len(events, 1)
	s.Equal("ListBookings", events[0].Operation)
}
