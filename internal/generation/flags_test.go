package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptDayCount(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
		ok     bool
	}{
		{"I want a 5 day strength training plan", 5, true},
		{"3-day split please", 3, true},
		{"Give me 4 DAYS of cardio", 4, true},
		{"9 day plan", 0, false},
		{"something for 12 days", 0, false},
		{"no numbers here", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			n, ok := PromptDayCount(tt.prompt)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestDeriveSessionFlags(t *testing.T) {
	assert.Equal(t, SessionFlags{Quick: true, Home: true}, DeriveSessionFlags("Quick HOME workout"))
	assert.Equal(t, SessionFlags{Home: true}, DeriveSessionFlags("bodyweight only, no gym"))
	assert.Equal(t, SessionFlags{Quick: true}, DeriveSessionFlags("short gym session"))
	assert.Equal(t, SessionFlags{}, DeriveSessionFlags("full gym day"))
}
