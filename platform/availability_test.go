package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/models"

	"go.uber.org/zap"
)

func TestCheckBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("room_id") != "7" {
			t.Errorf("room_id = %q", q.Get("room_id"))
		}
		if q.Get("check_in_date") == "" || q.Get("check_out_date") == "" {
			t.Error("missing date params")
		}
		json.NewEncoder(w).Encode(models.AvailabilityQuote{
			RoomID:     7,
			Available:  true,
			TotalPrice: 2_700_000,
		})
	}))
	defer srv.Close()

	client := NewAvailabilityClient(NewClient(srv.URL, 2*time.Second, zap.NewNop()), nil)
	quote, err := client.Check(context.Background(), 7, "2026-03-01T00:00:00Z", "2026-03-04T00:00:00Z")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !quote.Available || quote.TotalPrice != 2_700_000 {
		t.Fatalf("quote = %+v", quote)
	}
}

func TestCheckRejectsIncompleteQuery(t *testing.T) {
	client := NewAvailabilityClient(NewClient("http://unused", time.Second, zap.NewNop()), nil)

	if _, err := client.Check(context.Background(), 0, "a", "b"); err == nil {
		t.Fatal("expected error for missing room id")
	}
	if _, err := client.Check(context.Background(), 7, "", "b"); err == nil {
		t.Fatal("expected error for missing check-in")
	}
	if _, err := client.Check(context.Background(), 7, "a", ""); err == nil {
		t.Fatal("expected error for missing check-out")
	}
}

func TestCheckReturnsErrorOnServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Room not found"})
	}))
	defer srv.Close()

	client := NewAvailabilityClient(NewClient(srv.URL, 2*time.Second, zap.NewNop()), nil)
	quote, err := client.Check(context.Background(), 99, "2026-03-01", "2026-03-04")
	if err == nil {
		t.Fatal("expected error")
	}
	if quote != nil {
		t.Fatal("quote must be nil on failure; callers keep their prior quote")
	}
}
