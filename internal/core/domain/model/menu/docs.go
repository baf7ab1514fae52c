// Package menu contains the catalog aggregate: the items on the card
// and their fixed categories. Items are administered freely; the order
// aggregate protects itself from catalog edits by snapshotting prices
// at checkout.
package menu
