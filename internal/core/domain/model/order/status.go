package order

import (
	"fmt"

	"bookshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single transition:
//
//	Placed ──> Cancelled
//
// There is no way back; a cancelled order stays cancelled, and a placed
// order stays placed until cancellation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set when an order is created.
	Placed

	// Cancelled indicates the order was cancelled and its stock returned.
	// This is a final state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Placed and Cancelled; Unknown (0) and any other
// values are invalid. Used to vet values arriving from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Placed -> Cancelled
//
// Returns (0, error) for any other starting state. This method is used by
// Order.Cancel to enforce the state machine.
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
