// Package catalog exposes the marketplace's public browse operations: the
// supplier directory, per-supplier product listings, and demo data seeding.
package catalog
