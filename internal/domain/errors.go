package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRSVPNotFound         = errors.New("rsvp not found")
	ErrCheckInEventNotFound = errors.New("check-in event not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrRosterNotFound       = errors.New("roster not found")
)

var (
	ErrRSVPNotApplicable       = errors.New("event does not accept rsvps")
	ErrDeadlineExpired         = errors.New("rsvp deadline has passed")
	ErrAlreadyRegistered       = errors.New("user already has an rsvp for this event")
	ErrCapacityExceeded        = errors.New("event is at capacity")
	ErrPaymentNotConfirmed     = errors.New("payment is not confirmed")
	ErrPaymentAlreadyConfirmed = errors.New("payment is already confirmed")
)

var (
	ErrUnknownCredential = errors.New("unknown credential")
	ErrCredentialExpired = errors.New("credential has expired")
	ErrCredentialTaken   = errors.New("credential collides with an existing one")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
