package internal

import (
	"encoding/json"
	"time"
)

// NormalizeTimestamp validates t against now. A timestamp is usable only
// if it is set and not in the future; otherwise the conversion time is
// substituted so every message still sorts and renders.
func NormalizeTimestamp(t, now time.Time) time.Time {
	if t.IsZero() || t.After(now) {
		return now
	}
	return t
}

// ParseTimestamp decodes a raw JSON timestamp value. The exports are
// inconsistent: some write unix epochs (seconds or milliseconds), some
// write ISO strings with or without a zone. Unparsable input yields the
// zero time, which NormalizeTimestamp later replaces.
func ParseTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return timeFromEpoch(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseTimestampString(s)
	}

	return time.Time{}
}

// ParseTimestampString parses a timestamp string, trying the layouts
// the supported exports are known to produce.
func ParseTimestampString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

// timeFromEpoch guesses the epoch unit. Millisecond exports are 13
// digits for any modern date, second exports 10.
func timeFromEpoch(n int64) time.Time {
	if n <= 0 {
		return time.Time{}
	}
	if n > 1e12 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// DateString formats t for date headings: local zone, YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// TimeString formats t for message headings: local zone, 24-hour HH:MM.
func TimeString(t time.Time) string {
	return t.Local().Format("15:04")
}
