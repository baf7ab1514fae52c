// Package kernel provides the domain primitives shared by every
// aggregate of the restaurant system.
//
// It contains:
//   - UUID: a value object wrapping collision-resistant identifiers,
//     replacing the ad-hoc short random strings of earlier revisions
//   - Phone: a value object for customer and driver phone numbers,
//     kept in the local format customers type in; international
//     normalization is a messaging concern
//
// Both types are immutable value objects: safe to copy, safe to share,
// only constructible through their factory functions.
package kernel
