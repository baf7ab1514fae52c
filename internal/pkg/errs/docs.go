// Package errs provides the standardized error types used across the
// application.
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrValueIsRequired), a struct carrying the failure details,
// constructors with and without an underlying cause, an Error() method
// for formatting, and an Unwrap() method returning the sentinel so that
// callers can classify failures with errors.Is.
//
// Domain constructors and repositories return these types for every
// expected failure: missing required values, values violating an
// invariant, values outside their bounds, and entities that cannot be
// found. Unexpected failures (driver errors, broken connections) are
// passed through untouched.
package errs
