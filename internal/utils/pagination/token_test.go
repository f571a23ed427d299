package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor Cursor
	}{
		{
			name: "standard values",
			cursor: Cursor{
				Date:      time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
				CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
				ID:        "6b1f3c1e-2a55-4d0c-9d53-0d2f3f0b2c11",
			},
		},
		{
			name:   "zero times",
			cursor: Cursor{ID: "x"},
		},
		{
			name:   "id containing separator",
			cursor: Cursor{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ID: "a|b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeCursor(tt.cursor)
			assert.NotEmpty(t, token)
			assert.NotContains(t, token, "+", "token must be URL safe")
			assert.NotContains(t, token, "/", "token must be URL safe")

			got, err := DecodeCursor(token)
			require.NoError(t, err)
			assert.True(t, tt.cursor.Date.Equal(got.Date))
			assert.True(t, tt.cursor.CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, tt.cursor.ID, got.ID)
		})
	}
}

func TestDecodeCursorError(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		contains string
	}{
		{"invalid base64", "this is not base64!", "base64 decode"},
		{"missing separator", base64.RawURLEncoding.EncodeToString([]byte("nodelimiter")), "split"},
		{"missing id", base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|")), "split"},
		{"bad date", base64.RawURLEncoding.EncodeToString([]byte("yesterday|2023-05-15T00:00:00Z|id")), "date parse"},
		{"bad created_at", base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|later|id")), "created_at parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
