package notification

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestTransport(t *testing.T, host string, port int) *SMTPTransport {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return NewSMTPTransport(SMTPConfig{Host: host, Port: port, From: "noreply@example.com"}, log)
}

func TestSMTPTransport_Disabled(t *testing.T) {
	tr := newTestTransport(t, "", 587)

	err := tr.Send(context.Background(), &domain.EmailMessage{To: "ann@example.com"})

	assert.ErrorIs(t, err, ErrTransportDisabled)
}

func TestSMTPTransport_SilentRelayHonoursDeadline(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	// accepts and never greets
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()
	t.Cleanup(func() {
		select {
		case conn := <-accepted:
			conn.Close()
		default:
		}
	})

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	tr := newTestTransport(t, host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = tr.Send(ctx, &domain.EmailMessage{To: "ann@example.com", Subject: "hi", PlainBody: "hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
