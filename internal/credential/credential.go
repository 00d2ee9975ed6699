package credential

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stpnv0/EventCheckIn/internal/domain"
)

const qrSize = 512

// NewToken returns an opaque credential for flow: the flow prefix followed by
// 32 hex characters of a random UUID.
func NewToken(flow domain.Flow) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return flow.TokenPrefix() + strings.ReplaceAll(id.String(), "-", ""), nil
}

// Normalize trims whitespace a scanner may add around a code.
func Normalize(code string) string {
	return strings.TrimSpace(code)
}

// RenderQR encodes token as a PNG image.
func RenderQR(token string) ([]byte, error) {
	png, err := qrcode.Encode(token, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
