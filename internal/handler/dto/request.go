package dto

import "github.com/stpnv0/EventCheckIn/internal/domain"

type FieldRequest struct {
	ID       string   `json:"id"       binding:"required"`
	Type     string   `json:"type"     binding:"required"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

func ToFields(req []FieldRequest) []domain.Field {
	fields := make([]domain.Field, 0, len(req))
	for _, f := range req {
		fields = append(fields, domain.Field{
			ID:       f.ID,
			Kind:     domain.FieldKind(f.Type),
			Label:    f.Label,
			Required: f.Required,
			Options:  f.Options,
		})
	}
	return fields
}

type CreateEventRequest struct {
	Title           string         `json:"title"            binding:"required"`
	Description     string         `json:"description"`
	Location        string         `json:"location"`
	EventDate       string         `json:"event_date"       binding:"required"`
	RSVPRequired    bool           `json:"rsvp_required"`
	RSVPDeadline    *string        `json:"rsvp_deadline"`
	MaxParticipants *int           `json:"max_participants" binding:"omitempty,gt=0"`
	RequiresPayment bool           `json:"requires_payment"`
	Fields          []FieldRequest `json:"fields"           binding:"dive"`
}

type UpdateSchemaRequest struct {
	Fields []FieldRequest `json:"fields" binding:"required,dive"`
}

type SubmitRSVPRequest struct {
	UserID    string         `json:"user_id"   binding:"required,uuid"`
	Responses map[string]any `json:"responses"`
}

type ConfirmPaymentRequest struct {
	Reference string `json:"reference"`
}

type CreateUserRequest struct {
	Name           string `json:"name"             binding:"required"`
	Email          string `json:"email"            binding:"required,email"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCheckInEventRequest struct {
	Title        string `json:"title"         binding:"required"`
	Date         string `json:"date"          binding:"required"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	MaxAttendees *int   `json:"max_attendees" binding:"omitempty,gt=0"`
	CreatedBy    string `json:"created_by"`
}

type AddAttendeeRequest struct {
	Name       string         `json:"name"        binding:"required"`
	Email      string         `json:"email"       binding:"required,email"`
	Adults     int            `json:"adults"      binding:"min=0"`
	Kids       int            `json:"kids"        binding:"min=0"`
	FoodCounts map[string]int `json:"food_counts"`
}

type ScanRequest struct {
	Code      string `json:"code"       binding:"required,max=64"`
	ScannedBy string `json:"scanned_by"`
}
