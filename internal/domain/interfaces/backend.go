package interfaces

import (
	"context"

	domaintypes "micromarket/internal/domain/types"
)

// BackendClient is how we talk to the marketplace API, all with context.
type BackendClient interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates an account; it does not authenticate.
	Register(
		ctx context.Context,
		name, email, password string,
		role domaintypes.Role,
	) error
	// Me fetches the profile belonging to the bearer token.
	Me(ctx context.Context, token string) (domaintypes.User, error)

	Suppliers(ctx context.Context) ([]domaintypes.Supplier, error)
	SupplierProducts(
		ctx context.Context,
		supplier domaintypes.SupplierID,
	) ([]domaintypes.Product, error)

	Cart(ctx context.Context, token string) (domaintypes.RemoteCart, error)
	AddCartItem(ctx context.Context, token string, item domaintypes.LineItem) error

	// SeedDemo asks the backend to create demo suppliers and products.
	// Safe to call repeatedly; returns the backend's acknowledgement message.
	SeedDemo(ctx context.Context) (string, error)
}
