package types

// LineItem is one product entry within a cart. Quantity is always >= 1;
// merging on ProductID keeps at most one line per product.
type LineItem struct {
	ProductID  ProductID  `json:"product_id"`
	SupplierID SupplierID `json:"supplier_id"`
	Name       string     `json:"name,omitempty"`
	UnitPrice  float64    `json:"price_per_unit"`
	Quantity   int        `json:"quantity"`
}

// Subtotal is this line's contribution to the cart total.
func (li LineItem) Subtotal() float64 { return float64(li.Quantity) * li.UnitPrice }

// RemoteCart is the server-side view of a vendor's cart.
type RemoteCart struct {
	ID          string     `json:"id"`
	VendorID    UserID     `json:"vendor_id"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}
