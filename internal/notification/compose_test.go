package notification

import (
	"testing"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialEmail_Standalone(t *testing.T) {
	rec := &domain.Recipient{
		Ref:        domain.AttendeeRef{Flow: domain.FlowStandalone, ID: "a1"},
		Name:       "Ann",
		Email:      "ann@example.com",
		Credential: "Qabc",
		EventTitle: "Picnic",
		EventDate:  time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		EventTime:  "12:30",
		Location:   "Park",
	}

	msg := CredentialEmail(rec, []byte("png"))

	assert.Equal(t, "ann@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Picnic")
	assert.Contains(t, msg.PlainBody, "Saturday, 04 Jul 2026 12:30")
	assert.Contains(t, msg.PlainBody, "Where: Park")
	assert.Contains(t, msg.PlainBody, "Qabc")
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "image/png", msg.Attachment.ContentType)
	assert.Equal(t, []byte("png"), msg.Attachment.Data)
}

func TestCredentialEmail_RSVPWithoutLocation(t *testing.T) {
	rec := &domain.Recipient{
		Ref:        domain.AttendeeRef{Flow: domain.FlowRSVP, ID: "r1"},
		Name:       "Bob",
		Email:      "bob@example.com",
		Credential: "Rabc",
		EventTitle: "Gala",
		EventDate:  time.Date(2026, 12, 1, 19, 0, 0, 0, time.UTC),
	}

	msg := CredentialEmail(rec, nil)

	assert.Contains(t, msg.PlainBody, "19:00")
	assert.NotContains(t, msg.PlainBody, "Where:")
}
