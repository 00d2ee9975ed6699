package dto

import (
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/form"
)

type EventResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	EventDate       string  `json:"event_date"`
	RSVPRequired    bool    `json:"rsvp_required"`
	RSVPDeadline    *string `json:"rsvp_deadline"`
	MaxParticipants *int    `json:"max_participants"`
	RequiresPayment bool    `json:"requires_payment"`
	CreatedAt       string  `json:"created_at"`
}

type SchemaResponse struct {
	Version   int            `json:"version"`
	Fields    []domain.Field `json:"fields"`
	CreatedAt string         `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse   `json:"event"`
	Schema         *SchemaResponse `json:"schema"`
	Registered     int             `json:"registered"`
	AvailableSpots *int            `json:"available_spots"`
}

// DeliveryResponse is flattened into every attendee listing.
type DeliveryResponse struct {
	EmailStatus     string  `json:"email_status"`
	EmailSentAt     *string `json:"email_sent_at"`
	EmailRetryCount int     `json:"email_retry_count"`
	ErrorMessage    *string `json:"error_message"`
}

type RSVPResponse struct {
	ID               string         `json:"id"`
	EventID          string         `json:"event_id"`
	UserID           string         `json:"user_id"`
	SchemaVersion    int            `json:"schema_version"`
	Responses        map[string]any `json:"responses"`
	PaymentConfirmed bool           `json:"payment_confirmed"`
	CredentialIssued bool           `json:"credential_issued"`
	DeliveryResponse
	CheckedIn   bool    `json:"checked_in"`
	CheckedInAt *string `json:"checked_in_at"`
	CreatedAt   string  `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CheckInEventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	Location     string `json:"location"`
	MaxAttendees *int   `json:"max_attendees"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
}

type AttendeeResponse struct {
	ID               string         `json:"id"`
	EventID          string         `json:"event_id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Adults           int            `json:"adults"`
	Kids             int            `json:"kids"`
	FoodCounts       map[string]int `json:"food_counts"`
	CredentialIssued bool           `json:"credential_issued"`
	DeliveryResponse
	CreatedAt string `json:"created_at"`
}

type RosterEntryResponse struct {
	ID    string `json:"id"`
	Flow  string `json:"flow"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DeliveryResponse
	CheckedIn   bool    `json:"checked_in"`
	CheckedInAt *string `json:"checked_in_at"`
}

type ResendResponse struct {
	AttendeeID string `json:"attendee_id"`
	Flow       string `json:"flow"`
	DeliveryResponse
}

type SendRosterResponse struct {
	Dispatched int `json:"dispatched"`
}

type DeleteCheckInEventResponse struct {
	DeletedCounts domain.DeletedCounts `json:"deleted_counts"`
}

type ScanResponse struct {
	Status       string `json:"status"`
	AttendeeID   string `json:"attendee_id"`
	Flow         string `json:"flow"`
	AttendeeName string `json:"attendee_name"`
	CheckedInAt  string `json:"checked_in_at"`
}

type ErrorResponse struct {
	Error      string           `json:"error"`
	Violations []form.Violation `json:"violations,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		EventDate:       e.EventDate.Format(time.RFC3339),
		RSVPRequired:    e.RSVPRequired,
		RSVPDeadline:    formatTime(e.RSVPDeadline),
		MaxParticipants: e.MaxParticipants,
		RequiresPayment: e.RequiresPayment,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToSchemaResponse(s *domain.FormSchema) *SchemaResponse {
	if s == nil {
		return nil
	}
	fields := s.Fields
	if fields == nil {
		fields = []domain.Field{}
	}
	return &SchemaResponse{
		Version:   s.Version,
		Fields:    fields,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		Schema:         ToSchemaResponse(d.Schema),
		Registered:     d.Registered,
		AvailableSpots: d.AvailableSpots,
	}
}

func ToDeliveryResponse(d domain.Delivery) DeliveryResponse {
	return DeliveryResponse{
		EmailStatus:     string(d.Status),
		EmailSentAt:     formatTime(d.SentAt),
		EmailRetryCount: d.RetryCount,
		ErrorMessage:    d.ErrorMessage,
	}
}

func ToRSVPResponse(r *domain.RSVPResponse) RSVPResponse {
	responses := make(map[string]any, len(r.Responses))
	for id, v := range r.Responses {
		responses[id] = v.Raw()
	}

	return RSVPResponse{
		ID:               r.ID,
		EventID:          r.EventID,
		UserID:           r.UserID,
		SchemaVersion:    r.SchemaVersion,
		Responses:        responses,
		PaymentConfirmed: r.PaymentConfirmed,
		CredentialIssued: r.Credential() != "",
		DeliveryResponse: ToDeliveryResponse(r.Delivery),
		CheckedIn:        r.CheckedIn(),
		CheckedInAt:      formatTime(r.CheckedInAt),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCheckInEventResponse(e *domain.CheckInEvent) CheckInEventResponse {
	return CheckInEventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Date:         e.Date.Format(domain.DateLayout),
		Time:         e.Time,
		Location:     e.Location,
		MaxAttendees: e.MaxAttendees,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToAttendeeResponse(a *domain.QRAttendee) AttendeeResponse {
	return AttendeeResponse{
		ID:               a.ID,
		EventID:          a.EventID,
		Name:             a.Name,
		Email:            a.Email,
		Adults:           a.Adults,
		Kids:             a.Kids,
		FoodCounts:       a.FoodCounts,
		CredentialIssued: a.Credential() != "",
		DeliveryResponse: ToDeliveryResponse(a.Delivery),
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}

func ToRosterEntryResponse(v *domain.AttendeeView) RosterEntryResponse {
	return RosterEntryResponse{
		ID:               v.Ref.ID,
		Flow:             string(v.Ref.Flow),
		Name:             v.Name,
		Email:            v.Email,
		DeliveryResponse: ToDeliveryResponse(v.Delivery),
		CheckedIn:        v.IsCheckedIn(),
		CheckedInAt:      formatTime(v.CheckedInAt),
	}
}

func ToScanResponse(r *domain.ScanResult) ScanResponse {
	return ScanResponse{
		Status:       string(r.Outcome),
		AttendeeID:   r.Ref.ID,
		Flow:         string(r.Ref.Flow),
		AttendeeName: r.AttendeeName,
		CheckedInAt:  r.CheckedInAt.UTC().Format(time.RFC3339),
	}
}
