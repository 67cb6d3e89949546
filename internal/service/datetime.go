package service

import (
	"strconv"
	"strings"
	"time"

	"devtools/backend/internal/model"
)

// Integers above this are read as milliseconds rather than seconds.
const millisThreshold = 30_000_000_000

// ParseDate reads a unix timestamp (seconds or milliseconds) or an RFC 3339
// string. Anything else falls back to now.
func ParseDate(input string, now time.Time) model.DateResponse {
	t := now
	input = strings.TrimSpace(input)
	if ts, err := strconv.ParseInt(input, 10, 64); err == nil {
		if ts > millisThreshold {
			t = time.UnixMilli(ts)
		} else {
			t = time.Unix(ts, 0)
		}
	} else if parsed, err := time.Parse(time.RFC3339, input); err == nil {
		t = parsed
	}

	t = t.UTC()
	return model.DateResponse{
		UnixSec:   t.Unix(),
		UnixMilli: t.UnixMilli(),
		ISO8601:   t.Format(time.RFC3339),
		HumanUTC:  t.Format("2006-01-02 15:04:05 UTC"),
	}
}
