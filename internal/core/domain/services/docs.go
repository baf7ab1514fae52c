// Package services contains stateless domain services that operate on
// multiple aggregates without belonging to any single one.
package services
