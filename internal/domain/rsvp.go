package domain

import "time"

type RSVPResponse struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	UserID           string     `json:"user_id"`
	SchemaVersion    int        `json:"schema_version"`
	Responses        Responses  `json:"responses"`
	PaymentConfirmed bool       `json:"payment_confirmed"`
	PaymentReference *string    `json:"payment_reference"`
	QRCode           *string    `json:"qr_code"`
	Delivery         Delivery   `json:"delivery"`
	CheckedInAt      *time.Time `json:"checked_in_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (r *RSVPResponse) Ref() AttendeeRef { return AttendeeRef{Flow: FlowRSVP, ID: r.ID} }

func (r *RSVPResponse) Credential() string {
	if r.QRCode == nil {
		return ""
	}
	return *r.QRCode
}

// CheckedIn is derived from the check-in timestamp; there is no stored flag.
func (r *RSVPResponse) CheckedIn() bool { return r.CheckedInAt != nil }
