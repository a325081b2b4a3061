// Package domain defines the marketplace client's core types and the
// interfaces between its layers.
//
// Concrete types live in the types subpackage and interfaces in the
// interfaces subpackage; this package re-exports both through aliases so
// callers can import a single path.
package domain
