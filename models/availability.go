package models

// AvailabilityQuote is the platform's availability and pricing answer for one
// (room, check-in, check-out) query. Ephemeral: recomputed whenever dates change
// and never persisted beyond the short quote cache.
type AvailabilityQuote struct {
	RoomID              int     `json:"room_id"`
	RoomName            string  `json:"room_name,omitempty"`
	Available           bool    `json:"available"`
	BasePrice           float64 `json:"base_price"`
	Nights              int     `json:"nights"`
	TotalBeforeDiscount float64 `json:"total_price_before_discount,omitempty"`
	DiscountRate        float64 `json:"discount_rate"`
	TotalPrice          float64 `json:"total_price"`
	PricePerNight       float64 `json:"price_per_night_after_discount,omitempty"`
	CheckInDate         string  `json:"check_in_date,omitempty"`
	CheckOutDate        string  `json:"check_out_date,omitempty"`
}

// BulkAvailabilityRequest asks for quotes on several rooms at once.
type BulkAvailabilityRequest struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	RoomIDs      []int  `json:"room_ids"`
}
