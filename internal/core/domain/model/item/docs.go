// Package item contains the Item aggregate: a catalog entry that owns its
// price and stock quantity. Stock mutations go through AddStock and
// RemoveStock, which keep the stock-never-negative invariant. Item kinds
// (currently only books) are modeled as a closed set of Details variants
// rather than an inheritance hierarchy.
package item
