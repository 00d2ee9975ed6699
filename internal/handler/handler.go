package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/form"
	"github.com/stpnv0/EventCheckIn/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateSchema(ctx context.Context, eventID string, fields []domain.Field) (*domain.FormSchema, error)
}

type RSVPSvc interface {
	SubmitRSVP(ctx context.Context, eventID, userID string, submission map[string]any) (*domain.RSVPResponse, error)
	ConfirmPayment(ctx context.Context, rsvpID, reference string) (*domain.RSVPResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RSVPResponse, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type RegistrySvc interface {
	Create(ctx context.Context, input domain.CreateCheckInEventInput) (*domain.CheckInEvent, error)
	Get(ctx context.Context, id string) (*domain.CheckInEvent, error)
	List(ctx context.Context) ([]*domain.CheckInEvent, error)
	Delete(ctx context.Context, id string) (domain.DeletedCounts, error)
	AddAttendee(ctx context.Context, input domain.AddAttendeeInput) (*domain.QRAttendee, error)
	ListAttendees(ctx context.Context, rosterID string) ([]*domain.AttendeeView, error)
}

type DeliverySvc interface {
	Resend(ctx context.Context, attendeeID string) (domain.AttendeeRef, domain.Delivery, error)
	SendRoster(ctx context.Context, rosterID string) (int, error)
}

type CheckInSvc interface {
	Scan(ctx context.Context, code, scannedBy string) (*domain.ScanResult, error)
}

type Handler struct {
	eventService    EventSvc
	rsvpService     RSVPSvc
	userService     UserSvc
	registryService RegistrySvc
	deliveryService DeliverySvc
	checkInService  CheckInSvc
}

func NewHandler(
	eventService EventSvc,
	rsvpService RSVPSvc,
	userService UserSvc,
	registryService RegistrySvc,
	deliveryService DeliverySvc,
	checkInService CheckInSvc,
) *Handler {
	return &Handler{
		eventService:    eventService,
		rsvpService:     rsvpService,
		userService:     userService,
		registryService: registryService,
		deliveryService: deliveryService,
		checkInService:  checkInService,
	}
}

// pathID reads a uuid path parameter, writing a 400 when it is malformed.
func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error(), Violations: verr.Violations})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRSVPNotFound),
		errors.Is(err, domain.ErrCheckInEventNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrRosterNotFound),
		errors.Is(err, domain.ErrUnknownCredential):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrDeadlineExpired),
		errors.Is(err, domain.ErrRSVPNotApplicable),
		errors.Is(err, domain.ErrPaymentNotConfirmed),
		errors.Is(err, domain.ErrPaymentAlreadyConfirmed),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCredentialExpired):
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
