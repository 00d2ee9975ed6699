package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bindAsGiven(_ context.Context, _ string, token string) (string, error) {
	return token, nil
}

func TestIssuerService_Issue_Standalone(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	qrStore.EXPECT().BindCredential(mock.Anything, "a1", mock.Anything).RunAndReturn(bindAsGiven)

	token, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "Q"))
	assert.Len(t, token, 33)
}

func TestIssuerService_Issue_ReturnsBoundToken(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	qrStore.EXPECT().BindCredential(mock.Anything, "a1", mock.Anything).Return("Qfirst", nil).Twice()

	ref := domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"}
	first, err := svc.Issue(context.Background(), ref)
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), ref)
	require.NoError(t, err)

	assert.Equal(t, "Qfirst", first)
	assert.Equal(t, first, second)
}

func TestIssuerService_Issue_RegeneratesOnCollision(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	qrStore.EXPECT().BindCredential(mock.Anything, "a1", mock.Anything).Return("", domain.ErrCredentialTaken).Once()
	qrStore.EXPECT().BindCredential(mock.Anything, "a1", mock.Anything).RunAndReturn(bindAsGiven).Once()

	token, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "Q"))
}

func TestIssuerService_Issue_CollisionsExhausted(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	qrStore.EXPECT().BindCredential(mock.Anything, "a1", mock.Anything).
		Return("", domain.ErrCredentialTaken).Times(maxIssueAttempts)

	_, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialTaken)
}

func TestIssuerService_Issue_RSVPRequiresPayment(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	rsvps.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.RSVPResponse{ID: "r1"}, nil)

	_, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"})

	assert.ErrorIs(t, err, domain.ErrPaymentNotConfirmed)
}

func TestIssuerService_Issue_RSVPAlreadyIssued(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	rsvps.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.RSVPResponse{
		ID: "r1", PaymentConfirmed: true, QRCode: ptr("Rexisting"),
	}, nil)

	token, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"})

	require.NoError(t, err)
	assert.Equal(t, "Rexisting", token)
}

func TestIssuerService_Issue_RSVPPaid(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	rsvps.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.RSVPResponse{ID: "r1", PaymentConfirmed: true}, nil)
	rsvpStore.EXPECT().BindCredential(mock.Anything, "r1", mock.Anything).RunAndReturn(bindAsGiven)

	token, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "R"))
}

func TestIssuerService_Issue_RSVPNotFound(t *testing.T) {
	rsvpStore := mocks.NewMockCredentialStore(t)
	qrStore := mocks.NewMockCredentialStore(t)
	rsvps := mocks.NewMockRSVPRepo(t)
	svc := NewIssuerService(rsvpStore, qrStore, rsvps, newTestLogger(t))

	rsvps.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrRSVPNotFound)

	_, err := svc.Issue(context.Background(), domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"})

	assert.ErrorIs(t, err, domain.ErrRSVPNotFound)
}
