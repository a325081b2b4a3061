package interfaces

import (
	"context"

	domaintypes "micromarket/internal/domain/types"
)

// TokenSource yields the bearer token of the active session, if any.
type TokenSource interface {
	Token() (string, bool)
}

// SessionService owns authentication state and the durable session record.
type SessionService interface {
	Login(ctx context.Context, email, password string) error
	Register(
		ctx context.Context,
		name, email, password string,
		role domaintypes.Role,
	) error
	Logout() error
	Restore() error

	Current() domaintypes.Session
	Token() (string, bool)
	IsAuthenticated() bool
	Loading() bool
}

// CartService aggregates line items locally, mirroring writes to the backend.
type CartService interface {
	AddItem(ctx context.Context, product domaintypes.Product, qty int) error
	Pull(ctx context.Context) error
	Items() []domaintypes.LineItem
	TotalAmount() float64
	Len() int
}

// CatalogService reads the public supplier directory and product catalogs.
type CatalogService interface {
	Suppliers(ctx context.Context) ([]domaintypes.Supplier, error)
	SupplierProducts(
		ctx context.Context,
		supplier domaintypes.SupplierID,
	) ([]domaintypes.Product, error)
	SeedDemo(ctx context.Context) (string, error)
}
