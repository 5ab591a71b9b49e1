package commands

import (
	"context"
	"time"
)

// PurgeOrderCountersCommandHandler drops daily counter rows that fell out of
// the retention window. Runs from the scheduled cleanup job.
type PurgeOrderCountersCommandHandler struct {
	uowFactory UoWFactory
}

// NewPurgeOrderCountersCommandHandler creates a handler for counter cleanup operations.
func NewPurgeOrderCountersCommandHandler(uowFactory UoWFactory) PurgeOrderCountersCommandHandler {
	return PurgeOrderCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command.
func (h *PurgeOrderCountersCommandHandler) Handle(ctx context.Context, cmd PurgeOrderCountersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	if err := uow.OrderNumbers().PurgeBefore(ctx, cutoff); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
