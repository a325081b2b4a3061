package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"micromarket/internal/api"
	"micromarket/internal/domain"
	"micromarket/internal/logging"
	cartsvc "micromarket/internal/services/cart"
	catalogsvc "micromarket/internal/services/catalog"
	sessionsvc "micromarket/internal/services/session"
	"micromarket/internal/store"
)

// Wire bundles the stores, services, and backend client for the CLI.
type Wire struct {
	Log      zerolog.Logger
	Backend  domain.BackendClient
	Sessions domain.SessionService
	Cart     domain.CartService
	Catalog  domain.CatalogService
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := logging.Setup(cfg.LogLevel, nil)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	backend := api.New(cfg.BackendURL, httpClient, log)

	// File-based session store under the config home
	sessionStore := store.NewSessionFileStore(cfg.Home)

	// High-level services
	sessions := sessionsvc.New(sessionStore, backend, log)
	cart := cartsvc.New(sessions, backend, log)
	catalog := catalogsvc.New(backend, log)

	return &Wire{
		Log:      log,
		Backend:  backend,
		Sessions: sessions,
		Cart:     cart,
		Catalog:  catalog,
		HTTP:     httpClient,
	}, nil
}
