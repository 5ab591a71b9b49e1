package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle rule violations.
var (
	ErrBusinessRuleViolation   = errors.New("business rule violated")
	ErrInvalidStatusTransition = errors.New("status transition is not allowed")
)

// BusinessRuleViolationError indicates that an operation is not permitted by a
// business rule, such as cancelling an already-delivered order.
type BusinessRuleViolationError struct {
	Message string
	Cause   error
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError without a cause.
func NewBusinessRuleViolationError(message string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message}
}

// NewBusinessRuleViolationErrorWithCause creates a BusinessRuleViolationError wrapping a cause.
func NewBusinessRuleViolationErrorWithCause(message string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolation, e.Message)
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// InvalidStatusTransitionError indicates a status change the state machine
// does not permit. The message names both statuses.
type InvalidStatusTransitionError struct {
	From string
	To   string
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError.
func NewInvalidStatusTransitionError(from, to string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: from %q to %q", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
