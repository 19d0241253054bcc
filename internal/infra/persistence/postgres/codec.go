package postgres

import (
	"encoding/json"
	"time"
)

// Timestamps are persisted as timezone-aware RFC3339 text. The round trip
// through formatTimestamp/parseTimestamp is lossless to the second.

func formatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// String slices (product images, promotion product ids) are persisted as
// JSON text columns.

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}

	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}

	return string(data)
}

func decodeStrings(encoded string) []string {
	if encoded == "" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil
	}

	return values
}
