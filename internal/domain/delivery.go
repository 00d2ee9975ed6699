package domain

import "time"

type EmailStatus string

const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
)

// Delivery is the per-attendee email state, stored in typed columns for both
// flows.
type Delivery struct {
	Status        EmailStatus `json:"email_status"`
	SentAt        *time.Time  `json:"email_sent_at"`
	RetryCount    int         `json:"email_retry_count"`
	ErrorMessage  *string     `json:"error_message"`
	LastAttemptAt *time.Time  `json:"last_attempt_at,omitempty"`
}

func NewDelivery() Delivery {
	return Delivery{Status: EmailPending}
}

type RetryPolicy struct {
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	AttemptTimeout time.Duration
	StaleAfter     time.Duration
}

// Backoff returns the wait before the retry that follows failure number n.
func (p RetryPolicy) Backoff(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	d := p.BaseDelay
	for i := 1; i < n; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

func (p RetryPolicy) Exhausted(d Delivery) bool {
	return d.Status == EmailFailed && d.RetryCount >= p.MaxRetries
}

// Due reports whether the automatic path may attempt d at now.
func (p RetryPolicy) Due(d Delivery, now time.Time) bool {
	switch d.Status {
	case EmailSent:
		return false
	case EmailPending:
		return d.LastAttemptAt == nil || d.LastAttemptAt.Before(now.Add(-p.StaleAfter))
	case EmailFailed:
		if d.RetryCount >= p.MaxRetries {
			return false
		}
		return d.LastAttemptAt == nil || !d.LastAttemptAt.Add(p.Backoff(d.RetryCount)).After(now)
	}
	return false
}

// DeliveryClaim carries the conditions an automatic claim is made under.
// Repositories apply them in a single conditional update: a failed row under
// the retry budget, or a pending row nobody attempted since StaleBefore.
type DeliveryClaim struct {
	Now         time.Time
	MaxRetries  int
	StaleBefore time.Time
}

func (p RetryPolicy) Claim(now time.Time) DeliveryClaim {
	return DeliveryClaim{
		Now:         now,
		MaxRetries:  p.MaxRetries,
		StaleBefore: now.Add(-p.StaleAfter),
	}
}

type DeliveryCandidate struct {
	Ref      AttendeeRef
	Delivery Delivery
}

// Recipient is everything needed to compose a credential email.
type Recipient struct {
	Ref        AttendeeRef
	Name       string
	Email      string
	Credential string
	EventTitle string
	EventDate  time.Time
	EventTime  string
	Location   string
	Delivery   Delivery
}

type EmailAttachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type EmailMessage struct {
	To         string
	Subject    string
	PlainBody  string
	HTMLBody   string
	Attachment *EmailAttachment
}
