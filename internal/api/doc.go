// Package api provides an HTTP implementation of the domain.BackendClient
// interface used by the marketplace CLI.
//
// The backend is the MicroMarket REST API: authentication, the supplier
// directory, per-supplier product catalogs, cart mutation, and demo data
// seeding.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Every request carries an X-Request-ID header for correlation
// with backend logs. Non-2xx statuses are returned as *StatusError with the
// HTTP method, path, and status; when the failure payload carries a "detail"
// field, its message is preserved so callers can surface it to the user.
package api
