package types

import "time"

// DiscountTier grants a fractional discount once an order reaches MinQty units.
type DiscountTier struct {
	MinQty   int     `json:"min_qty"`
	Discount float64 `json:"discount"`
}

// Product is one catalog entry offered by a supplier.
type Product struct {
	ID                ProductID      `json:"id"`
	SupplierID        SupplierID     `json:"supplier_id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	PricePerUnit      float64        `json:"price_per_unit"`
	Unit              string         `json:"unit"`
	QuantityAvailable int            `json:"quantity_available"`
	DiscountTiers     []DiscountTier `json:"bulk_discount_tiers"`
	ImageURL          string         `json:"image_url"`
	Description       string         `json:"description"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// PriceFor returns the effective unit price for an order of qty units,
// applying the deepest bulk discount tier whose minimum is met.
func (p Product) PriceFor(qty int) float64 {
	best := 0.0
	for _, t := range p.DiscountTiers {
		if qty >= t.MinQty && t.Discount > best {
			best = t.Discount
		}
	}
	return p.PricePerUnit * (1 - best)
}
