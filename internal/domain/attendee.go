package domain

import (
	"strings"
	"time"
)

// Flow names the credential domain an attendee belongs to. The two flows
// share validation and delivery logic but never reference each other.
type Flow string

const (
	FlowRSVP       Flow = "rsvp"
	FlowStandalone Flow = "standalone"
)

var Flows = []Flow{FlowRSVP, FlowStandalone}

const (
	rsvpTokenPrefix       = "R"
	standaloneTokenPrefix = "Q"
)

func (f Flow) TokenPrefix() string {
	if f == FlowRSVP {
		return rsvpTokenPrefix
	}
	return standaloneTokenPrefix
}

// FlowOfToken routes a scanned code to its flow by prefix.
func FlowOfToken(token string) (Flow, bool) {
	switch {
	case strings.HasPrefix(token, rsvpTokenPrefix):
		return FlowRSVP, true
	case strings.HasPrefix(token, standaloneTokenPrefix):
		return FlowStandalone, true
	}
	return "", false
}

type AttendeeRef struct {
	Flow Flow   `json:"flow"`
	ID   string `json:"id"`
}

// AttendeeView is one roster row, identical for both flows.
type AttendeeView struct {
	Ref         AttendeeRef `json:"ref"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Delivery    Delivery    `json:"delivery"`
	CheckedInAt *time.Time  `json:"checked_in_at"`
}

func (v *AttendeeView) IsCheckedIn() bool { return v.CheckedInAt != nil }

// CredentialHolder is the result of resolving a scanned code. EventDate is
// the calendar event's start for the RSVP flow and the roster's date for the
// standalone flow.
type CredentialHolder struct {
	Ref       AttendeeRef
	Name      string
	RosterID  string
	EventDate time.Time
}

type ScanOutcome string

const (
	ScanCheckedIn        ScanOutcome = "checked_in"
	ScanAlreadyCheckedIn ScanOutcome = "already_checked_in"
	ScanUnknown          ScanOutcome = "unknown_credential"
	ScanExpired          ScanOutcome = "expired"
	ScanFailed           ScanOutcome = "error"
)

type ScanResult struct {
	Outcome      ScanOutcome `json:"outcome"`
	Ref          AttendeeRef `json:"ref"`
	AttendeeName string      `json:"attendee_name"`
	CheckedInAt  time.Time   `json:"checked_in_at"`
}

// ScanRecord is one audit entry; every scan attempt produces one.
type ScanRecord struct {
	ID         string
	Code       string
	Flow       Flow
	AttendeeID *string
	Outcome    ScanOutcome
	ScannedBy  string
	ScannedAt  time.Time
}
