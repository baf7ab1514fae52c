// Package cart contains the Cart aggregate.
//
// Each customer has at most one cart, identified by their phone
// number. Checkout turns the cart's lines into an order with prices
// snapshotted from the menu, then clears it.
package cart
