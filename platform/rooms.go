package platform

import (
	"context"
	"fmt"
	"net/http"

	"staybook/models"
)

// RoomsClient fetches room records. Rooms are read-only for this service.
type RoomsClient struct {
	*Client
}

func NewRoomsClient(c *Client) *RoomsClient {
	return &RoomsClient{Client: c}
}

// GetRoom fetches a single room by id.
func (r *RoomsClient) GetRoom(ctx context.Context, roomID int) (*models.Room, error) {
	var room models.Room
	path := fmt.Sprintf("/api/rooms/%d", roomID)
	if err := r.do(ctx, http.MethodGet, path, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}
