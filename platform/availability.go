package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"staybook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	availabilityCachePrefix = "availability:"
	availabilityCacheTTL    = 60 * time.Second
)

// AvailabilityClient queries room availability and pricing. Quotes are
// advisory until submission: callers keep their prior quote on any failure.
// The platform caches these server-side for five minutes; we keep a shorter
// redis cache to absorb per-keystroke date changes.
type AvailabilityClient struct {
	*Client
	cache *redis.Client
}

// NewAvailabilityClient builds an availability client. cache may be nil.
func NewAvailabilityClient(c *Client, cache *redis.Client) *AvailabilityClient {
	return &AvailabilityClient{Client: c, cache: cache}
}

// Check fetches a quote for one room and date range. Safe to call on every
// date change; responses are idempotent overwrites keyed by the current dates.
func (a *AvailabilityClient) Check(ctx context.Context, roomID int, checkIn, checkOut string) (*models.AvailabilityQuote, error) {
	if roomID == 0 || checkIn == "" || checkOut == "" {
		return nil, fmt.Errorf("availability query needs room and both dates")
	}

	cacheKey := fmt.Sprintf("%s%d:%s:%s", availabilityCachePrefix, roomID, checkIn, checkOut)
	if a.cache != nil {
		if data, err := a.cache.Get(ctx, cacheKey).Result(); err == nil {
			var quote models.AvailabilityQuote
			if err := json.Unmarshal([]byte(data), &quote); err == nil {
				return &quote, nil
			}
		}
	}

	q := url.Values{}
	q.Set("room_id", fmt.Sprint(roomID))
	q.Set("check_in_date", checkIn)
	q.Set("check_out_date", checkOut)

	var quote models.AvailabilityQuote
	if err := a.do(ctx, http.MethodGet, "/api/bookings/availability?"+q.Encode(), nil, &quote); err != nil {
		return nil, err
	}

	if a.cache != nil {
		if data, err := json.Marshal(quote); err == nil {
			if err := a.cache.Set(ctx, cacheKey, data, availabilityCacheTTL).Err(); err != nil {
				a.logger.Debug("failed to cache availability quote", zap.Error(err))
			}
		}
	}
	return &quote, nil
}

// CheckBulk fetches quotes for several rooms at once (browse flow).
func (a *AvailabilityClient) CheckBulk(ctx context.Context, req models.BulkAvailabilityRequest) ([]models.AvailabilityQuote, error) {
	if len(req.RoomIDs) == 0 {
		return nil, nil
	}
	var quotes []models.AvailabilityQuote
	if err := a.do(ctx, http.MethodPost, "/api/bookings/availability/bulk", req, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
