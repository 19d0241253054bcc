package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip_LosslessToTheSecond(t *testing.T) {
	original := time.Date(2025, 6, 1, 13, 45, 12, 987654321, time.UTC)

	encoded := formatTimestamp(original)
	decoded := parseTimestamp(encoded)

	assert.True(t, decoded.Equal(original.Truncate(time.Second)))
}

func TestParseTimestamp_PreservesOffset(t *testing.T) {
	decoded := parseTimestamp("2025-06-01T16:45:12+03:00")

	require.False(t, decoded.IsZero())
	assert.True(t, decoded.Equal(time.Date(2025, 6, 1, 13, 45, 12, 0, time.UTC)))
}

func TestParseTimestamp_MalformedYieldsZero(t *testing.T) {
	assert.True(t, parseTimestamp("yesterday").IsZero())
	assert.True(t, parseTimestamp("").IsZero())
}

func TestEncodeStrings_RoundTrip(t *testing.T) {
	ids := []string{"p1", "p2", "p3"}

	assert.Equal(t, ids, decodeStrings(encodeStrings(ids)))
	assert.Equal(t, "[]", encodeStrings(nil))
	assert.Empty(t, decodeStrings("[]"))
}
