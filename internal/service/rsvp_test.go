package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/form"
	"github.com/stpnv0/EventCheckIn/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rsvpMocks struct {
	rsvps      *mocks.MockRSVPRepo
	events     *mocks.MockEventRepo
	users      *mocks.MockUserRepo
	dispatcher *mocks.MockDeliveryDispatcher
}

func newRSVPService(t *testing.T) (*RSVPService, rsvpMocks) {
	t.Helper()
	m := rsvpMocks{
		rsvps:      mocks.NewMockRSVPRepo(t),
		events:     mocks.NewMockEventRepo(t),
		users:      mocks.NewMockUserRepo(t),
		dispatcher: mocks.NewMockDeliveryDispatcher(t),
	}
	return NewRSVPService(m.rsvps, m.events, m.users, m.dispatcher, newTestLogger(t)), m
}

func mealSchema() *domain.FormSchema {
	return &domain.FormSchema{
		ID:      "s1",
		EventID: "e1",
		Version: 2,
		Fields: []domain.Field{
			{ID: "meal", Kind: domain.FieldSelect, Label: "Meal", Required: true, Options: []string{"veg", "fish"}},
			{ID: "guests", Kind: domain.FieldNumber, Label: "Guests"},
		},
	}
}

func TestRSVPService_SubmitRSVP_FreeEventDispatches(t *testing.T) {
	svc, m := newRSVPService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", RSVPRequired: true}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.events.EXPECT().LatestSchema(mock.Anything, "e1").Return(mealSchema(), nil)
	m.rsvps.EXPECT().Admit(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(ref domain.AttendeeRef) bool {
		return ref.Flow == domain.FlowRSVP && ref.ID != ""
	})).Return()

	rsvp, err := svc.SubmitRSVP(context.Background(), "e1", "u1", map[string]any{
		"meal":   "fish",
		"guests": float64(2),
		"extra":  "dropped",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, rsvp.SchemaVersion)
	assert.True(t, rsvp.PaymentConfirmed)
	assert.Nil(t, rsvp.QRCode)
	assert.Nil(t, rsvp.CheckedInAt)
	assert.Equal(t, domain.EmailPending, rsvp.Delivery.Status)
	assert.Equal(t, domain.TextValue(domain.FieldSelect, "fish"), rsvp.Responses["meal"])
	assert.Equal(t, domain.NumberValue(2), rsvp.Responses["guests"])
	assert.NotContains(t, rsvp.Responses, "extra")
}

func TestRSVPService_SubmitRSVP_PaidEventWaitsForPayment(t *testing.T) {
	svc, m := newRSVPService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", RSVPRequired: true, RequiresPayment: true}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.events.EXPECT().LatestSchema(mock.Anything, "e1").Return(&domain.FormSchema{EventID: "e1"}, nil)
	m.rsvps.EXPECT().Admit(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rsvp, err := svc.SubmitRSVP(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.False(t, rsvp.PaymentConfirmed)
}

func TestRSVPService_SubmitRSVP_InvalidOption(t *testing.T) {
	svc, m := newRSVPService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", RSVPRequired: true}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.events.EXPECT().LatestSchema(mock.Anything, "e1").Return(mealSchema(), nil)

	_, err := svc.SubmitRSVP(context.Background(), "e1", "u1", map[string]any{"meal": "vegan"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []form.Violation{{Code: form.InvalidOption, FieldID: "meal", Value: "vegan"}}, verr.Violations)
}

func TestRSVPService_SubmitRSVP_NotApplicable(t *testing.T) {
	svc, m := newRSVPService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	_, err := svc.SubmitRSVP(context.Background(), "e1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrRSVPNotApplicable)
}

func TestRSVPService_SubmitRSVP_PastDeadline(t *testing.T) {
	svc, m := newRSVPService(t)
	deadline := time.Now().Add(-time.Hour)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", RSVPRequired: true, RSVPDeadline: &deadline}, nil)

	_, err := svc.SubmitRSVP(context.Background(), "e1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrDeadlineExpired)
}

func TestRSVPService_SubmitRSVP_EventNotFound(t *testing.T) {
	svc, m := newRSVPService(t)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.SubmitRSVP(context.Background(), "missing", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRSVPService_SubmitRSVP_AdmissionRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"capacity", domain.ErrCapacityExceeded},
		{"duplicate", domain.ErrAlreadyRegistered},
		{"deadline", domain.ErrDeadlineExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRSVPService(t)

			m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", RSVPRequired: true}, nil)
			m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
			m.events.EXPECT().LatestSchema(mock.Anything, "e1").Return(&domain.FormSchema{EventID: "e1"}, nil)
			m.rsvps.EXPECT().Admit(mock.Anything, mock.Anything, mock.Anything).Return(tt.err)

			_, err := svc.SubmitRSVP(context.Background(), "e1", "u1", nil)

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRSVPService_SubmitRSVP_AdmitsAtServiceTime(t *testing.T) {
	svc, m := newRSVPService(t)
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", RSVPRequired: true}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.events.EXPECT().LatestSchema(mock.Anything, "e1").Return(&domain.FormSchema{EventID: "e1"}, nil)
	m.rsvps.EXPECT().Admit(mock.Anything, mock.Anything, now).Return(nil)
	m.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return()

	rsvp, err := svc.SubmitRSVP(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, now, rsvp.CreatedAt)
}

func TestRSVPService_ConfirmPayment_Dispatches(t *testing.T) {
	svc, m := newRSVPService(t)
	rsvp := &domain.RSVPResponse{ID: "r1", EventID: "e1", PaymentConfirmed: true}

	m.rsvps.EXPECT().ConfirmPayment(mock.Anything, "r1", "tx-42").Return(nil)
	m.rsvps.EXPECT().GetByID(mock.Anything, "r1").Return(rsvp, nil)
	m.dispatcher.EXPECT().Dispatch(mock.Anything, domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"}).Return()

	got, err := svc.ConfirmPayment(context.Background(), "r1", "tx-42")

	require.NoError(t, err)
	assert.Equal(t, rsvp, got)
}

func TestRSVPService_ConfirmPayment_AlreadyConfirmed(t *testing.T) {
	svc, m := newRSVPService(t)

	m.rsvps.EXPECT().ConfirmPayment(mock.Anything, "r1", "").Return(domain.ErrPaymentAlreadyConfirmed)

	_, err := svc.ConfirmPayment(context.Background(), "r1", "")

	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyConfirmed)
}

func TestRSVPService_ListByUser(t *testing.T) {
	svc, m := newRSVPService(t)
	rsvps := []*domain.RSVPResponse{{ID: "r1"}, {ID: "r2"}}

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.rsvps.EXPECT().ListByUser(mock.Anything, "u1").Return(rsvps, nil)

	got, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRSVPService_ListByUser_UnknownUser(t *testing.T) {
	svc, m := newRSVPService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByUser(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
