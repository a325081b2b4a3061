package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"micromarket/internal/domain"
)

// Service reads the public supplier directory and product catalogs. None of
// its operations require authentication.
type Service struct {
	backend domain.BackendClient
	log     zerolog.Logger
}

// New returns a catalog service backed by the given client.
func New(backend domain.BackendClient, log zerolog.Logger) *Service {
	return &Service{backend: backend, log: log}
}

// Suppliers lists all supplier stalls.
func (s *Service) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.backend.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	s.log.Debug().Int("count", len(suppliers)).Msg("suppliers listed")
	return suppliers, nil
}

// SupplierProducts lists one supplier's catalog.
func (s *Service) SupplierProducts(
	ctx context.Context,
	supplier domain.SupplierID,
) ([]domain.Product, error) {
	products, err := s.backend.SupplierProducts(ctx, supplier)
	if err != nil {
		return nil, fmt.Errorf("list products for supplier %q: %w", supplier, err)
	}
	return products, nil
}

// SeedDemo asks the backend to create demo suppliers and products. The
// backend treats repeated calls as a no-op.
func (s *Service) SeedDemo(ctx context.Context) (string, error) {
	msg, err := s.backend.SeedDemo(ctx)
	if err != nil {
		return "", fmt.Errorf("seed demo data: %w", err)
	}
	return msg, nil
}

// Compile-time assertion that Service implements domain.CatalogService.
var _ domain.CatalogService = (*Service)(nil)
