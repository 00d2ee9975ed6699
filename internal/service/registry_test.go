package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registryMocks struct {
	events     *mocks.MockCheckInEventRepo
	attendees  *mocks.MockAttendeeRepo
	calendar   *mocks.MockEventRepo
	rsvps      *mocks.MockRSVPRepo
	dispatcher *mocks.MockDeliveryDispatcher
	alerter    *mocks.MockOpsAlerter
}

func newRegistryService(t *testing.T) (*RegistryService, registryMocks) {
	t.Helper()
	m := registryMocks{
		events:     mocks.NewMockCheckInEventRepo(t),
		attendees:  mocks.NewMockAttendeeRepo(t),
		calendar:   mocks.NewMockEventRepo(t),
		rsvps:      mocks.NewMockRSVPRepo(t),
		dispatcher: mocks.NewMockDeliveryDispatcher(t),
		alerter:    mocks.NewMockOpsAlerter(t),
	}
	svc := NewRegistryService(m.events, m.attendees, m.calendar, m.rsvps, m.dispatcher, m.alerter, newTestLogger(t))
	return svc, m
}

func TestRegistryService_Create_Success(t *testing.T) {
	svc, m := newRegistryService(t)

	m.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.CheckInEvent) bool {
		return e.Title == "Picnic" && e.Date.Equal(time.Date(2030, 7, 4, 0, 0, 0, 0, time.UTC)) &&
			e.Time == "12:30" && e.ID != ""
	})).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateCheckInEventInput{
		Title:        "  Picnic ",
		Date:         "2030-07-04",
		Time:         "12:30",
		MaxAttendees: ptr(50),
	})

	require.NoError(t, err)
	assert.Equal(t, "Picnic", event.Title)
}

func TestRegistryService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateCheckInEventInput
	}{
		{"empty title", domain.CreateCheckInEventInput{Title: " ", Date: "2030-07-04"}},
		{"bad date", domain.CreateCheckInEventInput{Title: "Picnic", Date: "04.07.2030"}},
		{"bad time", domain.CreateCheckInEventInput{Title: "Picnic", Date: "2030-07-04", Time: "noon"}},
		{"zero capacity", domain.CreateCheckInEventInput{Title: "Picnic", Date: "2030-07-04", MaxAttendees: ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistryService(t)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegistryService_AddAttendee_Dispatches(t *testing.T) {
	svc, m := newRegistryService(t)

	var created *domain.QRAttendee
	m.attendees.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.QRAttendee) error {
			created = a
			return nil
		})
	m.dispatcher.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(ref domain.AttendeeRef) bool {
		return ref.Flow == domain.FlowStandalone && created != nil && ref.ID == created.ID
	})).Return()

	a, err := svc.AddAttendee(context.Background(), domain.AddAttendeeInput{
		EventID: "c1",
		Name:    "Ann",
		Email:   "Ann <ann@example.com>",
		Adults:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", a.Email)
	assert.Equal(t, domain.EmailPending, a.Delivery.Status)
	assert.NotNil(t, a.FoodCounts)
}

func TestRegistryService_AddAttendee_CapacityExceeded(t *testing.T) {
	svc, m := newRegistryService(t)

	m.attendees.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.AddAttendee(context.Background(), domain.AddAttendeeInput{
		EventID: "c1", Name: "Ann", Email: "ann@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRegistryService_AddAttendee_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.AddAttendeeInput
	}{
		{"no name", domain.AddAttendeeInput{Email: "ann@example.com"}},
		{"bad email", domain.AddAttendeeInput{Name: "Ann", Email: "not-an-email"}},
		{"negative kids", domain.AddAttendeeInput{Name: "Ann", Email: "ann@example.com", Kids: -1}},
		{"negative food", domain.AddAttendeeInput{
			Name: "Ann", Email: "ann@example.com", FoodCounts: map[string]int{"veg": -2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistryService(t)

			_, err := svc.AddAttendee(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegistryService_Delete_ReportsCountsAndAlerts(t *testing.T) {
	svc, m := newRegistryService(t)
	event := &domain.CheckInEvent{ID: "c1", Title: "Picnic"}
	counts := domain.DeletedCounts{Attendees: 5, CheckIns: 3}

	alerted := make(chan domain.DeletedCounts, 1)
	m.events.EXPECT().GetByID(mock.Anything, "c1").Return(event, nil)
	m.events.EXPECT().Delete(mock.Anything, "c1").Return(counts, nil)
	m.alerter.EXPECT().NotifyRosterDeleted(mock.Anything, event, counts).
		Run(func(_ context.Context, _ *domain.CheckInEvent, c domain.DeletedCounts) {
			alerted <- c
		}).Return()

	got, err := svc.Delete(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, counts, got)

	select {
	case c := <-alerted:
		assert.Equal(t, counts, c)
	case <-time.After(time.Second):
		t.Fatal("roster deletion was not reported")
	}
}

func TestRegistryService_Delete_NotFound(t *testing.T) {
	svc, m := newRegistryService(t)

	m.events.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCheckInEventNotFound)

	_, err := svc.Delete(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrCheckInEventNotFound)
}

func TestRegistryService_ListAttendees_Standalone(t *testing.T) {
	svc, m := newRegistryService(t)
	roster := []*domain.AttendeeView{{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"}}}

	m.events.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.CheckInEvent{ID: "c1"}, nil)
	m.attendees.EXPECT().ListByEvent(mock.Anything, "c1").Return(roster, nil)

	got, err := svc.ListAttendees(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestRegistryService_ListAttendees_FallsBackToRSVPs(t *testing.T) {
	svc, m := newRegistryService(t)
	roster := []*domain.AttendeeView{{Ref: domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"}}}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrCheckInEventNotFound)
	m.calendar.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.rsvps.EXPECT().ListAttendees(mock.Anything, "e1").Return(roster, nil)

	got, err := svc.ListAttendees(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestRegistryService_ListAttendees_NotFound(t *testing.T) {
	svc, m := newRegistryService(t)

	m.events.EXPECT().GetByID(mock.Anything, "x").Return(nil, domain.ErrCheckInEventNotFound)
	m.calendar.EXPECT().GetByID(mock.Anything, "x").Return(nil, domain.ErrEventNotFound)

	_, err := svc.ListAttendees(context.Background(), "x")

	assert.ErrorIs(t, err, domain.ErrRosterNotFound)
}

func TestRegistryService_ListAttendees_LookupError(t *testing.T) {
	svc, m := newRegistryService(t)
	dbErr := errors.New("db down")

	m.events.EXPECT().GetByID(mock.Anything, "x").Return(nil, dbErr)

	_, err := svc.ListAttendees(context.Background(), "x")

	assert.ErrorIs(t, err, dbErr)
}
