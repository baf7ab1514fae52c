// Package order contains the order aggregate: the lifecycle state
// machine from checkout to delivery, the priced lines snapshotted at
// checkout, and the driver reference taken on at dispatch.
package order
