// Package reservation contains the Reservation aggregate and its value
// objects.
//
// A reservation is submitted by a customer as a pending request and is
// later confirmed or cancelled by staff; both outcomes are terminal.
// Bookings come in two kinds: a regular table, and the full private
// space which requires a larger party and an explicit end time.
package reservation
