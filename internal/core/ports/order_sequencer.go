package ports

import (
	"context"
	"time"
)

// OrderNumberSequencer hands out the human-facing sequential order number
// within a day scope (server-local calendar day), formatted as a 3-digit
// zero-padded decimal starting at "001".
//
// Implementations must make Next atomic with respect to concurrent callers in
// the same day scope, so two concurrent creations can never observe the same
// number.
type OrderNumberSequencer interface {
	// Next claims and returns the next number for the day of the given time.
	Next(ctx context.Context, day time.Time) (string, error)

	// PurgeBefore removes counter state for day scopes older than cutoff.
	// Housekeeping only; never affects issued numbers.
	PurgeBefore(ctx context.Context, cutoff time.Time) error
}
