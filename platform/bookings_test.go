package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/models"

	"go.uber.org/zap"
)

// fakeCreds is a stand-in for the session handle.
type fakeCreds struct {
	token       string
	nextToken   string
	refreshErr  error
	refreshed   int
	invalidated bool
}

func (f *fakeCreds) AccessToken() string { return f.token }

func (f *fakeCreds) Refresh(ctx context.Context) (string, error) {
	f.refreshed++
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	f.token = f.nextToken
	return f.token, nil
}

func (f *fakeCreds) Invalidate(ctx context.Context) { f.invalidated = true }

func testClient(t *testing.T, handler http.HandlerFunc) (*BookingClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBookingClient(NewClient(srv.URL, 2*time.Second, zap.NewNop())), srv
}

func writeBooking(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Booking{ID: 42, TotalPrice: 2_700_000, Status: "confirmed", PaymentStatus: "pending"})
}

func TestCreateRetriesOnceAfterRefresh(t *testing.T) {
	var calls int
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
			return
		}
		writeBooking(w, http.StatusCreated)
	})

	creds := &fakeCreds{token: "stale", nextToken: "fresh"}
	bk, err := client.Create(context.Background(), creds, models.BookingCreate{RoomID: 7})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if bk.ID != 42 {
		t.Fatalf("booking id = %d, want 42", bk.ID)
	}
	if calls != 2 {
		t.Fatalf("server saw %d calls, want 2", calls)
	}
	if creds.refreshed != 1 {
		t.Fatalf("refreshed %d times, want 1", creds.refreshed)
	}
	if creds.invalidated {
		t.Fatal("session should not be invalidated on successful retry")
	}
}

func TestCreateFailedRefreshEndsSession(t *testing.T) {
	var calls int
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	creds := &fakeCreds{token: "stale", refreshErr: ErrSessionExpired}
	_, err := client.Create(context.Background(), creds, models.BookingCreate{RoomID: 7})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if calls != 1 {
		t.Fatalf("server saw %d calls, want 1 (no retry without a new token)", calls)
	}
}

func TestCreateSecondUnauthorizedIsTerminal(t *testing.T) {
	var calls int
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	creds := &fakeCreds{token: "stale", nextToken: "still-bad"}
	_, err := client.Create(context.Background(), creds, models.BookingCreate{RoomID: 7})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if calls != 2 {
		t.Fatalf("server saw %d calls, want 2 (exactly one retry)", calls)
	}
	if creds.refreshed != 1 {
		t.Fatalf("refreshed %d times, want exactly 1", creds.refreshed)
	}
	if !creds.invalidated {
		t.Fatal("session must be invalidated after the second 401")
	}
}

func TestCreateSurfacesServerDetail(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Room already booked for the selected dates"})
	})

	creds := &fakeCreds{token: "good"}
	_, err := client.Create(context.Background(), creds, models.BookingCreate{RoomID: 7})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Detail != "Room already booked for the selected dates" {
		t.Fatalf("detail = %q", apiErr.Detail)
	}
}

func TestListDoesNotRetryOnUnauthorized(t *testing.T) {
	var calls int
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	creds := &fakeCreds{token: "stale", nextToken: "fresh"}
	_, err := client.List(context.Background(), creds)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if calls != 1 {
		t.Fatalf("server saw %d calls, want 1", calls)
	}
	if creds.refreshed != 0 {
		t.Fatal("list must not attempt a refresh")
	}
	if !creds.invalidated {
		t.Fatal("session must be cleared on a bare 401 from list")
	}
}

func TestCancelSendsPatch(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/bookings/42/cancel" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeBooking(w, http.StatusOK)
	})

	creds := &fakeCreds{token: "good"}
	bk, err := client.Cancel(context.Background(), creds, 42)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if bk.ID != 42 {
		t.Fatalf("booking id = %d, want 42", bk.ID)
	}
}

func TestListDecodesNaiveBackendTimestamps(t *testing.T) {
	// The backend serializes naive datetimes without a zone offset.
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{
			"id": 42,
			"check_in_date": "2026-03-01T00:00:00",
			"check_out_date": "2026-03-04T00:00:00",
			"created_at": "2026-02-20T08:15:30.123456",
			"updated_at": "2026-02-20T08:15:30.123456",
			"status": "confirmed",
			"payment_status": "pending",
			"total_price": 2700000
		}]`))
	})

	creds := &fakeCreds{token: "good"}
	list, err := client.List(context.Background(), creds)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d bookings, want 1", len(list))
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !list[0].CheckInDate.Equal(want) {
		t.Fatalf("check-in = %v, want %v", list[0].CheckInDate, want)
	}
}
