// Package driver contains the delivery-agent aggregate: availability
// state, rest-day calendar and cumulative delivery stats. The order
// lifecycle flips drivers between available and busy; the rest-day job
// flips them between available and off.
package driver
