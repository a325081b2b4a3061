package domain

import (
	interfaces "micromarket/internal/domain/interfaces"
	types "micromarket/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID       = types.UserID
	SupplierID   = types.SupplierID
	ProductID    = types.ProductID
	Role         = types.Role
	User         = types.User
	Supplier     = types.Supplier
	Product      = types.Product
	DiscountTier = types.DiscountTier
	LineItem     = types.LineItem
	RemoteCart   = types.RemoteCart
	Session      = types.Session
)

// Role constants re-exported for callers of the alias package.
const (
	RoleVendor   = types.RoleVendor
	RoleSupplier = types.RoleSupplier
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BackendClient  = interfaces.BackendClient
	SessionStore   = interfaces.SessionStore
	TokenSource    = interfaces.TokenSource
	SessionService = interfaces.SessionService
	CartService    = interfaces.CartService
	CatalogService = interfaces.CatalogService
)
