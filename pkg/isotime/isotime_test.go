package isotime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/invoicing-api/pkg/isotime"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-05-01T10:00:00-05:00", time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)},
		{"local datetime", "2024-05-01T10:00:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"fractional seconds", "2024-05-01T10:00:00.250", time.Date(2024, 5, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{"minutes only", "2024-05-01T10:30", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"space separator", "2024-05-01 10:00:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isotime.Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-13-01", "01/05/2024", "2024-05-01T25:00:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := isotime.Parse(input)
			assert.Error(t, err)
			assert.False(t, isotime.Valid(input))
		})
	}
}
