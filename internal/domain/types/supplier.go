package types

import "time"

// Supplier is one stall in the public supplier directory.
type Supplier struct {
	ID             SupplierID `json:"id"`
	UserID         UserID     `json:"user_id"`
	StallName      string     `json:"stall_name"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url"`
	ContactPhone   string     `json:"contact_phone"`
	Location       string     `json:"location"`
	Rating         float64    `json:"rating"`
	DeliveryRating float64    `json:"delivery_rating"`
	CreatedAt      time.Time  `json:"created_at"`
}
