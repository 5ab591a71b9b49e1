// Package order implements the order aggregate: the lifecycle status state
// machine, line items with frozen price snapshots, the notification catalog
// with its channel policy, and the snapshot shape shared by the API and the
// event payloads.
package order
