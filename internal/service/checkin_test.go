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

var scanNow = time.Date(2030, 6, 1, 18, 0, 0, 0, time.UTC)

type checkInMocks struct {
	rsvps *mocks.MockCredentialStore
	qr    *mocks.MockCredentialStore
	log   *mocks.MockScanLog
}

func newCheckInService(t *testing.T, expiry ExpiryPolicy) (*CheckInService, checkInMocks) {
	t.Helper()
	m := checkInMocks{
		rsvps: mocks.NewMockCredentialStore(t),
		qr:    mocks.NewMockCredentialStore(t),
		log:   mocks.NewMockScanLog(t),
	}
	svc := NewCheckInService(m.rsvps, m.qr, m.log, expiry, newTestLogger(t))
	svc.now = func() time.Time { return scanNow }
	return svc, m
}

func expectScanRecord(m checkInMocks, outcome domain.ScanOutcome) {
	m.log.EXPECT().Record(mock.Anything, mock.MatchedBy(func(r *domain.ScanRecord) bool {
		return r.Outcome == outcome && r.ID != "" && r.ScannedAt.Equal(scanNow)
	})).Return(nil)
}

func TestCheckInService_Scan_RSVPCheckedIn(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{RSVPGrace: 12 * time.Hour})
	holder := &domain.CredentialHolder{
		Ref:       domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"},
		Name:      "Ann",
		RosterID:  "e1",
		EventDate: scanNow.Add(time.Hour),
	}

	m.rsvps.EXPECT().Resolve(mock.Anything, "Rabc").Return(holder, nil)
	m.rsvps.EXPECT().CheckIn(mock.Anything, holder, scanNow, "door-1").Return(scanNow, true, nil)
	expectScanRecord(m, domain.ScanCheckedIn)

	res, err := svc.Scan(context.Background(), "  Rabc\n", "door-1")

	require.NoError(t, err)
	assert.Equal(t, domain.ScanCheckedIn, res.Outcome)
	assert.Equal(t, "Ann", res.AttendeeName)
	assert.Equal(t, scanNow, res.CheckedInAt)
}

func TestCheckInService_Scan_AlreadyCheckedIn(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})
	first := scanNow.Add(-10 * time.Minute)
	holder := &domain.CredentialHolder{
		Ref:       domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"},
		Name:      "Bob",
		RosterID:  "c1",
		EventDate: scanNow.Truncate(24 * time.Hour),
	}

	m.qr.EXPECT().Resolve(mock.Anything, "Qabc").Return(holder, nil)
	m.qr.EXPECT().CheckIn(mock.Anything, holder, scanNow, "").Return(first, false, nil)
	expectScanRecord(m, domain.ScanAlreadyCheckedIn)

	res, err := svc.Scan(context.Background(), "Qabc", "")

	require.NoError(t, err)
	assert.Equal(t, domain.ScanAlreadyCheckedIn, res.Outcome)
	assert.Equal(t, first, res.CheckedInAt)
}

func TestCheckInService_Scan_UnknownPrefix(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})

	expectScanRecord(m, domain.ScanUnknown)

	_, err := svc.Scan(context.Background(), "Xnope", "")

	assert.ErrorIs(t, err, domain.ErrUnknownCredential)
}

func TestCheckInService_Scan_EmptyCode(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})

	expectScanRecord(m, domain.ScanUnknown)

	_, err := svc.Scan(context.Background(), "   ", "")

	assert.ErrorIs(t, err, domain.ErrUnknownCredential)
}

func TestCheckInService_Scan_UnknownToken(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})

	m.qr.EXPECT().Resolve(mock.Anything, "Qmissing").Return(nil, domain.ErrUnknownCredential)
	expectScanRecord(m, domain.ScanUnknown)

	_, err := svc.Scan(context.Background(), "Qmissing", "")

	assert.ErrorIs(t, err, domain.ErrUnknownCredential)
}

func TestCheckInService_Scan_RSVPExpired(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{RSVPGrace: 12 * time.Hour})
	holder := &domain.CredentialHolder{
		Ref:       domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"},
		EventDate: scanNow.Add(-13 * time.Hour),
	}

	m.rsvps.EXPECT().Resolve(mock.Anything, "Rold").Return(holder, nil)
	expectScanRecord(m, domain.ScanExpired)

	_, err := svc.Scan(context.Background(), "Rold", "")

	assert.ErrorIs(t, err, domain.ErrCredentialExpired)
}

func TestCheckInService_Scan_StandaloneExpiryPolicy(t *testing.T) {
	lastWeek := scanNow.AddDate(0, 0, -7).Truncate(24 * time.Hour)
	holder := &domain.CredentialHolder{
		Ref:       domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"},
		RosterID:  "c1",
		EventDate: lastWeek,
	}

	t.Run("off", func(t *testing.T) {
		svc, m := newCheckInService(t, ExpiryPolicy{})
		m.qr.EXPECT().Resolve(mock.Anything, "Qold").Return(holder, nil)
		m.qr.EXPECT().CheckIn(mock.Anything, holder, scanNow, "").Return(scanNow, true, nil)
		expectScanRecord(m, domain.ScanCheckedIn)

		_, err := svc.Scan(context.Background(), "Qold", "")
		require.NoError(t, err)
	})

	t.Run("on", func(t *testing.T) {
		svc, m := newCheckInService(t, ExpiryPolicy{StandaloneExpiry: true})
		m.qr.EXPECT().Resolve(mock.Anything, "Qold").Return(holder, nil)
		expectScanRecord(m, domain.ScanExpired)

		_, err := svc.Scan(context.Background(), "Qold", "")
		assert.ErrorIs(t, err, domain.ErrCredentialExpired)
	})
}

func TestCheckInService_Scan_StoreError(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})
	holder := &domain.CredentialHolder{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"}}

	m.qr.EXPECT().Resolve(mock.Anything, "Qabc").Return(holder, nil)
	m.qr.EXPECT().CheckIn(mock.Anything, holder, scanNow, "").Return(time.Time{}, false, errors.New("db down"))
	expectScanRecord(m, domain.ScanFailed)

	_, err := svc.Scan(context.Background(), "Qabc", "")

	require.Error(t, err)
}

func TestCheckInService_Scan_AuditFailureIgnored(t *testing.T) {
	svc, m := newCheckInService(t, ExpiryPolicy{})
	holder := &domain.CredentialHolder{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"}}

	m.qr.EXPECT().Resolve(mock.Anything, "Qabc").Return(holder, nil)
	m.qr.EXPECT().CheckIn(mock.Anything, holder, scanNow, "").Return(scanNow, true, nil)
	m.log.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	res, err := svc.Scan(context.Background(), "Qabc", "")

	require.NoError(t, err)
	assert.Equal(t, domain.ScanCheckedIn, res.Outcome)
}

func TestExpiryPolicy_ExpiresAt(t *testing.T) {
	date := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		policy ExpiryPolicy
		flow   domain.Flow
		want   time.Time
		ok     bool
	}{
		{"rsvp grace", ExpiryPolicy{RSVPGrace: 12 * time.Hour}, domain.FlowRSVP, date.Add(12 * time.Hour), true},
		{"standalone off", ExpiryPolicy{}, domain.FlowStandalone, time.Time{}, false},
		{"standalone end of day", ExpiryPolicy{StandaloneExpiry: true}, domain.FlowStandalone, date.Add(24 * time.Hour), true},
		{"standalone grace", ExpiryPolicy{StandaloneExpiry: true, StandaloneGrace: 2 * time.Hour}, domain.FlowStandalone, date.Add(26 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.policy.ExpiresAt(&domain.CredentialHolder{
				Ref:       domain.AttendeeRef{Flow: tt.flow},
				EventDate: date,
			})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
