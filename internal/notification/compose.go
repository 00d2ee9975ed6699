package notification

import (
	"fmt"
	"strings"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

const qrAttachmentName = "checkin-qr.png"

// CredentialEmail builds the confirmation mail for rec with the QR image attached.
func CredentialEmail(rec *domain.Recipient, qrPNG []byte) *domain.EmailMessage {
	when := rec.EventDate.Format("Monday, 02 Jan 2006")
	if rec.EventTime != "" {
		when += " " + rec.EventTime
	} else if rec.Ref.Flow == domain.FlowRSVP {
		when = rec.EventDate.Format("Monday, 02 Jan 2006 15:04 MST")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", rec.Name)
	fmt.Fprintf(&b, "You are registered for %s.\n", rec.EventTitle)
	fmt.Fprintf(&b, "When: %s\n", when)
	if rec.Location != "" {
		fmt.Fprintf(&b, "Where: %s\n", rec.Location)
	}
	b.WriteString("\nShow the attached QR code at the entrance. It can be scanned once.\n")
	fmt.Fprintf(&b, "Code: %s\n", rec.Credential)

	return &domain.EmailMessage{
		To:        rec.Email,
		Subject:   fmt.Sprintf("Your check-in code for %s", rec.EventTitle),
		PlainBody: b.String(),
		Attachment: &domain.EmailAttachment{
			Name:        qrAttachmentName,
			ContentType: "image/png",
			Data:        qrPNG,
		},
	}
}
