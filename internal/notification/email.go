package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/domodwyer/mailyak/v3"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/logger"
)

var ErrTransportDisabled = errors.New("smtp transport is not configured")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPTransport sends mail through one SMTP relay. mailyak builds the MIME
// message; the SMTP exchange itself is run here so that ctx bounds it.
type SMTPTransport struct {
	cfg    SMTPConfig
	auth   smtp.Auth
	logger logger.Logger
}

func NewSMTPTransport(cfg SMTPConfig, logger logger.Logger) *SMTPTransport {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, credential emails will fail until configured")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPTransport{cfg: cfg, auth: auth, logger: logger}
}

func (t *SMTPTransport) SendCredential(ctx context.Context, rec *domain.Recipient, qrPNG []byte) error {
	return t.Send(ctx, CredentialEmail(rec, qrPNG))
}

func (t *SMTPTransport) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if t.cfg.Host == "" {
		return ErrTransportDisabled
	}

	mail := mailyak.New(net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port)), t.auth)
	mail.To(msg.To)
	mail.From(t.cfg.From)
	mail.FromName(t.cfg.FromName)
	mail.Subject(msg.Subject)
	mail.Plain().Set(msg.PlainBody)
	if msg.HTMLBody != "" {
		mail.HTML().Set(msg.HTMLBody)
	}
	if a := msg.Attachment; a != nil {
		mail.AttachWithMimeType(a.Name, bytes.NewReader(a.Data), a.ContentType)
	}

	mime, err := mail.MimeBuf()
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	if err = t.deliver(ctx, msg.To, mime); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("smtp send: %w", ctxErr)
		}
		return fmt.Errorf("smtp send: %w", err)
	}

	t.logger.Debug("credential email sent", logger.String("to", msg.To))
	return nil
}

// deliver runs the SMTP exchange over a connection bounded by ctx: the
// deadline covers the dial and every command, and cancellation closes the
// connection.
func (t *SMTPTransport) deliver(ctx context.Context, to string, mime *bytes.Buffer) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port)))
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return fmt.Errorf("greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: t.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if t.auth != nil {
		if err = c.Auth(t.auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}
	if err = c.Mail(t.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = mime.WriteTo(w); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}

	return c.Quit()
}
