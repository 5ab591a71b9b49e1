package commands

import (
	"errors"
	"time"

	"comanda/internal/pkg/guard"
)

var (
	ErrPurgeOrderCountersCommandIsNotConstructed = errors.New(
		"PurgeOrderCountersCommand must be created via NewPurgeOrderCountersCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeOrderCountersCommand represents a request to drop daily number counter
// rows older than the retention window. Housekeeping only; issued order
// numbers are never affected.
type PurgeOrderCountersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeOrderCountersCommand creates a command to purge stale counter rows.
// Retention must be positive.
func NewPurgeOrderCountersCommand(retention time.Duration) (PurgeOrderCountersCommand, error) {
	purgeCommand := PurgeOrderCountersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setRetention(retention); err != nil {
		return PurgeOrderCountersCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeOrderCountersCommandIsNotConstructed if validation fails.
func (c PurgeOrderCountersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrderCountersCommandIsNotConstructed)
}

// Retention returns how long counter rows are kept.
func (c PurgeOrderCountersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeOrderCountersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
