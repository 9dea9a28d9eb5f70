package models

// Room is a hotel room as served by the platform API. Read-only from our side.
type Room struct {
	ID          int      `json:"id"`
	HotelID     int      `json:"hotel_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RoomType    string   `json:"room_type"`
	MaxGuests   int      `json:"max_guests"`
	Size        float64  `json:"size,omitempty"`
	BedType     string   `json:"bed_type,omitempty"`
	BasePrice   float64  `json:"base_price"` // Nightly base price
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	CreatedAt   APITime  `json:"created_at,omitempty"`
	UpdatedAt   APITime  `json:"updated_at,omitempty"`
}
