package types

// UserID uniquely identifies a registered user.
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// SupplierID uniquely identifies a supplier stall.
type SupplierID string

// String returns the string form of the supplier identifier.
func (id SupplierID) String() string { return string(id) }

// ProductID uniquely identifies a product within the catalog.
type ProductID string

// String returns the string form of the product identifier.
func (id ProductID) String() string { return string(id) }

// Role distinguishes the two sides of the marketplace.
type Role string

const (
	// RoleVendor is a street food vendor buying produce.
	RoleVendor Role = "vendor"
	// RoleSupplier is a farmer or wholesaler selling produce.
	RoleSupplier Role = "supplier"
)

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known marketplace roles.
func (r Role) Valid() bool { return r == RoleVendor || r == RoleSupplier }
