package domain

import "time"

type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	EventDate       time.Time  `json:"event_date"`
	RSVPRequired    bool       `json:"rsvp_required"`
	RSVPDeadline    *time.Time `json:"rsvp_deadline"`
	MaxParticipants *int       `json:"max_participants"`
	RequiresPayment bool       `json:"requires_payment"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AcceptsAt reports whether the RSVP deadline, if any, has not passed at now.
func (e *Event) AcceptsAt(now time.Time) bool {
	return e.RSVPDeadline == nil || !e.RSVPDeadline.Before(now)
}

type EventDetails struct {
	Event          Event       `json:"event"`
	Schema         *FormSchema `json:"schema"`
	Registered     int         `json:"registered"`
	AvailableSpots *int        `json:"available_spots"`
}

type CreateEventInput struct {
	Title           string
	Description     string
	Location        string
	EventDate       time.Time
	RSVPRequired    bool
	RSVPDeadline    *time.Time
	MaxParticipants *int
	RequiresPayment bool
	Fields          []Field
}
