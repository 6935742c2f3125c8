// Package query provides pure, read-only projections over a catalog.Store.
//
// Every function is referentially transparent given the same store snapshot:
// no function mutates the store, and all orderings are deterministic.
// Ranked views use stable sorts over copies so that ties preserve the
// store's insertion order.
package query
