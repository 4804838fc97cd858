//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 30, 0, 123456789, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
	require.NoError(t, err)

	assert.True(t, gotTime.Equal(ts.Truncate(time.Microsecond)))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	for name, cursor := range map[string]string{
		"empty":           "",
		"not base64":      "!!!",
		"wrong version":   enc("v0:1:" + uuid.NewString()),
		"bad timestamp":   enc("v1:abc:" + uuid.NewString()),
		"bad uuid":        enc("v1:1:not-a-uuid"),
		"missing id part": enc("v1:1"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
