package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowOfToken(t *testing.T) {
	tests := []struct {
		token string
		flow  Flow
		ok    bool
	}{
		{"R0123456789abcdef0123456789abcdef", FlowRSVP, true},
		{"Q0123456789abcdef0123456789abcdef", FlowStandalone, true},
		{"X0123", "", false},
		{"", "", false},
		{"r0123", "", false},
	}

	for _, tt := range tests {
		flow, ok := FlowOfToken(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		assert.Equal(t, tt.flow, flow, tt.token)
	}
}

func TestFlow_TokenPrefix(t *testing.T) {
	for _, f := range Flows {
		flow, ok := FlowOfToken(f.TokenPrefix() + "abc")
		assert.True(t, ok)
		assert.Equal(t, f, flow)
	}
}
