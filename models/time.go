package models

import (
	"fmt"
	"strings"
	"time"
)

// APITime wraps time.Time to decode the platform's timestamps. The platform
// stores naive datetimes and serializes them without a zone offset
// ("2026-03-01T00:00:00"), which the stock time.Time decoder rejects. Naive
// values are taken as UTC. Marshalling is the stock RFC3339 encoding.
type APITime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("models: cannot parse time %q", s)
}
