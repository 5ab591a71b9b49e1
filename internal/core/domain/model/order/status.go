package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The string values are a
// wire contract shared with subscribers and must not change.
//
// State transitions:
//
//	aguardando ──> preparando ──> pronto ──> entregue
//	     │              │            │
//	     └──────────────┴────────────┴─────> cancelado
//
// entregue and cancelado are terminal. Creation places new orders directly
// into preparando; aguardando is a valid state no current path assigns.
type Status string

const (
	// StatusAguardando marks an order queued before the kitchen picks it up.
	StatusAguardando Status = "aguardando"

	// StatusPreparando marks an order the kitchen is working on.
	// New orders start here.
	StatusPreparando Status = "preparando"

	// StatusPronto marks an order ready for pickup at the service counter.
	StatusPronto Status = "pronto"

	// StatusEntregue marks an order handed to the customer. Terminal.
	StatusEntregue Status = "entregue"

	// StatusCancelado marks a cancelled order. Terminal.
	StatusCancelado Status = "cancelado"
)

// transitions is the full state machine. A status maps to the set of statuses
// it may move into; terminal statuses map to an empty set.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAguardando: {StatusPreparando, StatusCancelado},
		StatusPreparando: {StatusPronto, StatusCancelado},
		StatusPronto:     {StatusEntregue, StatusCancelado},
		StatusEntregue:   {},
		StatusCancelado:  {},
	}
}

// Validate checks that the status is one of the five known literals.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no outgoing transition.
func (s Status) IsTerminal() bool {
	return s == StatusEntregue || s == StatusCancelado
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. Self-transitions are never permitted.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the transition is legal, or an
// InvalidStatusTransitionError naming both statuses when it is not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidStatusTransitionError(s.String(), target.String())
	}
	return target, nil
}
