package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"micromarket/internal/domain"
)

// Service maintains the local view of the shopping cart.
//
// Mutations apply locally first and are then mirrored to the backend; a
// failed mirror write is reported as *domain.MirrorError but never rolls the
// local cart back, so the UI stays responsive when the backend write is slow
// or fails transiently.
type Service struct {
	tokens  domain.TokenSource
	backend domain.BackendClient // nil disables mirroring
	log     zerolog.Logger

	mu    sync.Mutex
	items []domain.LineItem
	total float64
}

// New returns an empty cart. A nil backend keeps the cart purely local.
func New(tokens domain.TokenSource, backend domain.BackendClient, log zerolog.Logger) *Service {
	return &Service{tokens: tokens, backend: backend, log: log}
}

// AddItem merges qty units of product into the cart and recomputes the
// total. It requires an active session; without one the cart is untouched
// and domain.ErrAuthenticationRequired is returned.
func (s *Service) AddItem(ctx context.Context, product domain.Product, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	token, ok := s.tokens.Token()
	if !ok {
		return fmt.Errorf("add %q to cart: %w", product.Name, domain.ErrAuthenticationRequired)
	}

	line := domain.LineItem{
		ProductID:  product.ID,
		SupplierID: product.SupplierID,
		Name:       product.Name,
		UnitPrice:  product.PricePerUnit,
		Quantity:   qty,
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, line)
	}
	s.recomputeTotal()
	s.mu.Unlock()

	s.log.Debug().
		Str("product_id", product.ID.String()).
		Int("qty", qty).
		Bool("merged", merged).
		Msg("cart item added")

	if s.backend == nil {
		return nil
	}
	// Mirror the delta; the backend merges quantities the same way.
	if err := s.backend.AddCartItem(ctx, token, line); err != nil {
		return &domain.MirrorError{Err: err}
	}
	return nil
}

// Pull replaces the local view with the server-side cart.
func (s *Service) Pull(ctx context.Context) error {
	token, ok := s.tokens.Token()
	if !ok {
		return fmt.Errorf("fetch cart: %w", domain.ErrAuthenticationRequired)
	}
	if s.backend == nil {
		return fmt.Errorf("fetch cart: no backend configured")
	}

	remote, err := s.backend.Cart(ctx, token)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	s.mu.Lock()
	s.items = append([]domain.LineItem(nil), remote.Items...)
	s.recomputeTotal()
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LineItem(nil), s.items...)
}

// TotalAmount returns the running total over all lines.
func (s *Service) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Len returns the number of distinct product lines.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// recomputeTotal derives the total from the lines after every mutation; it
// is never carried forward independently. Callers hold s.mu.
func (s *Service) recomputeTotal() {
	total := 0.0
	for _, li := range s.items {
		total += li.Subtotal()
	}
	s.total = total
}

// Compile-time assertion that Service implements domain.CartService.
var _ domain.CartService = (*Service)(nil)
