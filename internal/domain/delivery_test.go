package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 5,
		BaseDelay:  time.Minute,
		MaxDelay:   10 * time.Minute,
		StaleAfter: 5 * time.Minute,
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		failures int
		want     time.Duration
	}{
		{0, 0},
		{1, time.Minute},
		{2, 2 * time.Minute},
		{3, 4 * time.Minute},
		{4, 8 * time.Minute},
		{5, 10 * time.Minute},
		{40, 10 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Backoff(tt.failures), "failures=%d", tt.failures)
	}
}

func TestRetryPolicy_Due(t *testing.T) {
	p := testPolicy()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(ago time.Duration) *time.Time {
		t := now.Add(-ago)
		return &t
	}

	tests := []struct {
		name string
		d    Delivery
		want bool
	}{
		{"sent", Delivery{Status: EmailSent}, false},
		{"fresh pending", Delivery{Status: EmailPending}, true},
		{"pending in flight", Delivery{Status: EmailPending, LastAttemptAt: at(time.Minute)}, false},
		{"pending stale", Delivery{Status: EmailPending, LastAttemptAt: at(6 * time.Minute)}, true},
		{"failed waiting", Delivery{Status: EmailFailed, RetryCount: 2, LastAttemptAt: at(time.Minute)}, false},
		{"failed backed off", Delivery{Status: EmailFailed, RetryCount: 2, LastAttemptAt: at(2 * time.Minute)}, true},
		{"failed exhausted", Delivery{Status: EmailFailed, RetryCount: 5, LastAttemptAt: at(time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Due(tt.d, now))
		})
	}
}

func TestRetryPolicy_Exhausted(t *testing.T) {
	p := testPolicy()

	assert.False(t, p.Exhausted(Delivery{Status: EmailFailed, RetryCount: 4}))
	assert.True(t, p.Exhausted(Delivery{Status: EmailFailed, RetryCount: 5}))
	assert.False(t, p.Exhausted(Delivery{Status: EmailSent, RetryCount: 9}))
}

func TestRetryPolicy_Claim(t *testing.T) {
	p := testPolicy()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	claim := p.Claim(now)

	assert.Equal(t, now, claim.Now)
	assert.Equal(t, 5, claim.MaxRetries)
	assert.Equal(t, now.Add(-5*time.Minute), claim.StaleBefore)
}
