// Package cart aggregates the shopper's line items.
//
// The cart lives in memory for the life of the process, merging repeated
// adds of the same product into one line and recomputing the running total
// after every mutation. Writes are mirrored to the backend when one is
// configured, local-first.
package cart
