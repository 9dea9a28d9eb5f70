package models

import (
	"encoding/json"
	"testing"
	"time"
)

// The platform stores naive datetimes and serializes them with no zone
// offset, so decoding must not require RFC3339.
func TestBookingDecodesNaiveTimestamps(t *testing.T) {
	raw := `{
		"id": 42,
		"check_in_date": "2026-03-01T00:00:00",
		"check_out_date": "2026-03-04T00:00:00",
		"created_at": "2026-02-20T08:15:30.123456",
		"updated_at": "2026-02-20T08:15:30.123456",
		"status": "confirmed",
		"payment_status": "pending",
		"total_price": 2700000
	}`

	var bk Booking
	if err := json.Unmarshal([]byte(raw), &bk); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !bk.CheckInDate.Equal(want) {
		t.Fatalf("check-in = %v, want %v", bk.CheckInDate, want)
	}
	if !bk.CheckOutDate.After(bk.CheckInDate.Time) {
		t.Fatal("check-out must decode after check-in")
	}
	if bk.CreatedAt.IsZero() {
		t.Fatal("created_at with fractional seconds must decode")
	}
}

func TestAPITimeFormats(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 with offset", `"2026-03-01T07:00:00+07:00"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"naive datetime", `"2026-03-01T00:00:00"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"date only", `"2026-03-01"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got APITime
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got.Time, tc.want)
			}
		})
	}

	var bad APITime
	if err := json.Unmarshal([]byte(`"03/01/2026"`), &bad); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestAPITimeRoundTripsAsRFC3339(t *testing.T) {
	in := APITime{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(raw) != `"2026-03-01T00:00:00Z"` {
		t.Fatalf("marshalled as %s", raw)
	}
	var out APITime
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !out.Equal(in.Time) {
		t.Fatal("round-trip changed the value")
	}
}
