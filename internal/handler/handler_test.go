package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/form"
	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	hmocks "github.com/stpnv0/EventCheckIn/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	event    *hmocks.MockEventSvc
	rsvp     *hmocks.MockRSVPSvc
	user     *hmocks.MockUserSvc
	registry *hmocks.MockRegistrySvc
	delivery *hmocks.MockDeliverySvc
	checkIn  *hmocks.MockCheckInSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		event:    hmocks.NewMockEventSvc(t),
		rsvp:     hmocks.NewMockRSVPSvc(t),
		user:     hmocks.NewMockUserSvc(t),
		registry: hmocks.NewMockRegistrySvc(t),
		delivery: hmocks.NewMockDeliverySvc(t),
		checkIn:  hmocks.NewMockCheckInSvc(t),
	}

	h := NewHandler(m.event, m.rsvp, m.user, m.registry, m.delivery, m.checkIn)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id/schema", h.UpdateSchema)
		api.POST("/events/:id/rsvp", h.SubmitRSVP)
		api.POST("/rsvps/:id/payment", h.ConfirmPayment)
		api.GET("/users/:id/rsvps", h.GetUserRSVPs)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/checkin-events", h.CreateCheckInEvent)
		api.DELETE("/checkin-events/:id", h.DeleteCheckInEvent)
		api.POST("/checkin-events/:id/attendees", h.AddAttendee)
		api.POST("/checkin-events/:id/send", h.SendRoster)
		api.GET("/rosters/:id/attendees", h.ListRoster)
		api.POST("/attendees/:id/resend", h.ResendCredential)
		api.POST("/checkin/scan", h.ScanCredential)
	}

	return m, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventDate := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	details := &domain.EventDetails{
		Event: domain.Event{ID: uuid.New().String(), Title: "Gala", EventDate: eventDate, RSVPRequired: true},
		Schema: &domain.FormSchema{
			Version: 1,
			Fields:  []domain.Field{{ID: "meal", Kind: domain.FieldSelect, Options: []string{"veg", "fish"}}},
		},
	}

	m.event.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Gala" && in.EventDate.Equal(eventDate) && len(in.Fields) == 1 &&
			in.Fields[0].Kind == domain.FieldSelect
	})).Return(details, nil)

	w := doJSON(r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:        "Gala",
		EventDate:    eventDate.Format(time.RFC3339),
		RSVPRequired: true,
		Fields:       []dto.FieldRequest{{ID: "meal", Type: "select", Options: []string{"veg", "fish"}}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gala", resp.Event.Title)
	require.NotNil(t, resp.Schema)
	assert.Equal(t, 1, resp.Schema.Version)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", `{"title":"X","event_date":"not-a-date"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidSchema(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: field %q requires options", domain.ErrValidation, "meal"))

	w := doJSON(r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:     "Gala",
		EventDate: time.Now().Add(time.Hour).Format(time.RFC3339),
		Fields:    []dto.FieldRequest{{ID: "meal", Type: "select"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	spots := 95
	details := &domain.EventDetails{
		Event:          domain.Event{ID: eventID, Title: "Gala", EventDate: time.Now(), CreatedAt: time.Now()},
		Registered:     5,
		AvailableSpots: &spots,
	}

	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := doJSON(r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AvailableSpots)
	assert.Equal(t, 95, *resp.AvailableSpots)
	assert.Equal(t, 5, resp.Registered)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.event.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "1", Title: "A", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: "2", Title: "B", EventDate: time.Now(), CreatedAt: time.Now()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateSchema_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	schema := &domain.FormSchema{
		EventID: eventID,
		Version: 3,
		Fields:  []domain.Field{{ID: "guests", Kind: domain.FieldNumber}},
	}
	m.event.EXPECT().UpdateSchema(mock.Anything, eventID, mock.Anything).Return(schema, nil)

	w := doJSON(r, http.MethodPut, "/api/events/"+eventID+"/schema", dto.UpdateSchemaRequest{
		Fields: []dto.FieldRequest{{ID: "guests", Type: "number"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SchemaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Version)
}

// --- RSVPs ---

func TestHandler_SubmitRSVP_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	rsvp := &domain.RSVPResponse{
		ID:               uuid.New().String(),
		EventID:          eventID,
		UserID:           userID,
		SchemaVersion:    2,
		Responses:        domain.Responses{"meal": domain.TextValue(domain.FieldSelect, "veg")},
		PaymentConfirmed: true,
		Delivery:         domain.NewDelivery(),
		CreatedAt:        time.Now(),
	}

	m.rsvp.EXPECT().SubmitRSVP(mock.Anything, eventID, userID, map[string]any{"meal": "veg"}).Return(rsvp, nil)

	w := doJSON(r, http.MethodPost, "/api/events/"+eventID+"/rsvp", dto.SubmitRSVPRequest{
		UserID:    userID,
		Responses: map[string]any{"meal": "veg"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "veg", resp.Responses["meal"])
	assert.Equal(t, "pending", resp.EmailStatus)
	assert.False(t, resp.CredentialIssued)
}

func TestHandler_SubmitRSVP_Violations(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	verr := &form.ValidationError{Violations: []form.Violation{
		{Code: form.InvalidOption, FieldID: "meal", Value: "vegan"},
	}}
	m.rsvp.EXPECT().SubmitRSVP(mock.Anything, eventID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("validate responses: %w", verr))

	w := doJSON(r, http.MethodPost, "/api/events/"+eventID+"/rsvp", dto.SubmitRSVPRequest{
		UserID:    uuid.New().String(),
		Responses: map[string]any{"meal": "vegan"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, form.InvalidOption, resp.Violations[0].Code)
	assert.Equal(t, "meal", resp.Violations[0].FieldID)
	assert.Equal(t, "vegan", resp.Violations[0].Value)
}

func TestHandler_SubmitRSVP_Rejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"capacity", domain.ErrCapacityExceeded, http.StatusConflict},
		{"duplicate", domain.ErrAlreadyRegistered, http.StatusConflict},
		{"deadline", domain.ErrDeadlineExpired, http.StatusConflict},
		{"not applicable", domain.ErrRSVPNotApplicable, http.StatusConflict},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			eventID := uuid.New().String()
			m.rsvp.EXPECT().SubmitRSVP(mock.Anything, eventID, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/events/"+eventID+"/rsvp", dto.SubmitRSVPRequest{
				UserID: uuid.New().String(),
			})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_SubmitRSVP_InvalidUserID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/rsvp", `{"user_id":"bob"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmPayment_NoBody(t *testing.T) {
	m, r := setupRouter(t)

	rsvpID := uuid.New().String()
	m.rsvp.EXPECT().ConfirmPayment(mock.Anything, rsvpID, "").Return(&domain.RSVPResponse{
		ID:               rsvpID,
		PaymentConfirmed: true,
		Delivery:         domain.NewDelivery(),
		CreatedAt:        time.Now(),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/rsvps/"+rsvpID+"/payment", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmPayment_AlreadyConfirmed(t *testing.T) {
	m, r := setupRouter(t)

	rsvpID := uuid.New().String()
	m.rsvp.EXPECT().ConfirmPayment(mock.Anything, rsvpID, "tx-1").Return(nil, domain.ErrPaymentAlreadyConfirmed)

	w := doJSON(r, http.MethodPost, "/api/rsvps/"+rsvpID+"/payment", dto.ConfirmPaymentRequest{Reference: "tx-1"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserRSVPs_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/users/not-a-uuid/rsvps", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateUserInput) bool {
		return in.Name == "Ann" && in.Email == "ann@example.com"
	})).Return(&domain.User{ID: uuid.New().String(), Name: "Ann", Email: "ann@example.com", CreatedAt: time.Now()}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ann@example.com", resp.Email)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Ann","email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: "1", Name: "a", CreatedAt: time.Now()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Standalone check-in events ---

func TestHandler_CreateCheckInEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.registry.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateCheckInEventInput) bool {
		return in.Title == "Picnic" && in.Date == "2030-07-04"
	})).Return(&domain.CheckInEvent{
		ID:        uuid.New().String(),
		Title:     "Picnic",
		Date:      time.Date(2030, 7, 4, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/checkin-events", dto.CreateCheckInEventRequest{Title: "Picnic", Date: "2030-07-04"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CheckInEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2030-07-04", resp.Date)
}

func TestHandler_DeleteCheckInEvent_ReportsCounts(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.registry.EXPECT().Delete(mock.Anything, id).Return(domain.DeletedCounts{Attendees: 5, CheckIns: 3}, nil)

	w := doJSON(r, http.MethodDelete, "/api/checkin-events/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DeleteCheckInEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.DeletedCounts.Attendees)
	assert.Equal(t, 3, resp.DeletedCounts.CheckIns)
	assert.Contains(t, w.Body.String(), `"deleted_counts"`)
}

func TestHandler_AddAttendee_CapacityExceeded(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.registry.EXPECT().AddAttendee(mock.Anything, mock.MatchedBy(func(in domain.AddAttendeeInput) bool {
		return in.EventID == id && in.Name == "Ann"
	})).Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(r, http.MethodPost, "/api/checkin-events/"+id+"/attendees", dto.AddAttendeeRequest{
		Name: "Ann", Email: "ann@example.com", Adults: 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SendRoster_Accepted(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.delivery.EXPECT().SendRoster(mock.Anything, id).Return(4, nil)

	w := doJSON(r, http.MethodPost, "/api/checkin-events/"+id+"/send", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.SendRosterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Dispatched)
}

func TestHandler_ListRoster_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.registry.EXPECT().ListAttendees(mock.Anything, id).Return(nil, domain.ErrRosterNotFound)

	w := doJSON(r, http.MethodGet, "/api/rosters/"+id+"/attendees", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListRoster_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	at := time.Now()
	m.registry.EXPECT().ListAttendees(mock.Anything, id).Return([]*domain.AttendeeView{
		{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"}, Name: "Ann", Delivery: domain.NewDelivery(), CheckedInAt: &at},
		{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a2"}, Name: "Bob", Delivery: domain.NewDelivery()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/rosters/"+id+"/attendees", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RosterEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].CheckedIn)
	assert.False(t, resp[1].CheckedIn)
}

func TestHandler_ResendCredential_ReportsFailure(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	reason := "smtp: connection refused"
	m.delivery.EXPECT().Resend(mock.Anything, id).Return(
		domain.AttendeeRef{Flow: domain.FlowRSVP, ID: id},
		domain.Delivery{Status: domain.EmailFailed, RetryCount: 6, ErrorMessage: &reason},
		nil,
	)

	w := doJSON(r, http.MethodPost, "/api/attendees/"+id+"/resend", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ResendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.EmailStatus)
	assert.Equal(t, 6, resp.EmailRetryCount)
	assert.Equal(t, "rsvp", resp.Flow)
}

func TestHandler_ResendCredential_PaymentPending(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.delivery.EXPECT().Resend(mock.Anything, id).Return(domain.AttendeeRef{}, domain.Delivery{}, domain.ErrPaymentNotConfirmed)

	w := doJSON(r, http.MethodPost, "/api/attendees/"+id+"/resend", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Scanning ---

func TestHandler_ScanCredential_Outcomes(t *testing.T) {
	at := time.Date(2030, 7, 4, 10, 0, 0, 0, time.UTC)

	for _, outcome := range []domain.ScanOutcome{domain.ScanCheckedIn, domain.ScanAlreadyCheckedIn} {
		t.Run(string(outcome), func(t *testing.T) {
			m, r := setupRouter(t)

			m.checkIn.EXPECT().Scan(mock.Anything, "Q123", "door").Return(&domain.ScanResult{
				Outcome:      outcome,
				Ref:          domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"},
				AttendeeName: "Ann",
				CheckedInAt:  at,
			}, nil)

			w := doJSON(r, http.MethodPost, "/api/checkin/scan", dto.ScanRequest{Code: "Q123", ScannedBy: "door"})

			assert.Equal(t, http.StatusOK, w.Code)

			var resp dto.ScanResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(outcome), resp.Status)
			assert.Equal(t, "2030-07-04T10:00:00Z", resp.CheckedInAt)
		})
	}
}

func TestHandler_ScanCredential_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown", domain.ErrUnknownCredential, http.StatusNotFound},
		{"expired", domain.ErrCredentialExpired, http.StatusGone},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			m.checkIn.EXPECT().Scan(mock.Anything, "R123", "").Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/checkin/scan", dto.ScanRequest{Code: "R123"})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_ScanCredential_MissingCode(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/checkin/scan", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ScanCredential_CodeTooLong(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/checkin/scan", dto.ScanRequest{Code: "R" + strings.Repeat("a", 100)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
