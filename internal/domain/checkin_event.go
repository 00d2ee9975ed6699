package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CheckInEvent is a standalone roster, unrelated to calendar events.
type CheckInEvent struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	MaxAttendees *int      `json:"max_attendees"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateCheckInEventInput struct {
	Title        string
	Date         string
	Time         string
	Location     string
	MaxAttendees *int
	CreatedBy    string
}

type QRAttendee struct {
	ID         string         `json:"id"`
	EventID    string         `json:"event_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Adults     int            `json:"adults"`
	Kids       int            `json:"kids"`
	FoodCounts map[string]int `json:"food_counts"`
	QRCode     *string        `json:"qr_code"`
	Delivery   Delivery       `json:"delivery"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (a *QRAttendee) Ref() AttendeeRef { return AttendeeRef{Flow: FlowStandalone, ID: a.ID} }

func (a *QRAttendee) Credential() string {
	if a.QRCode == nil {
		return ""
	}
	return *a.QRCode
}

type AddAttendeeInput struct {
	EventID    string
	Name       string
	Email      string
	Adults     int
	Kids       int
	FoodCounts map[string]int
}

type DeletedCounts struct {
	Attendees int `json:"attendees"`
	CheckIns  int `json:"check_ins"`
}
