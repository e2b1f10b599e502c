package order

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The values are the
// wire-level strings carried in JSON bodies and broadcast events.
//
// State transitions:
//
//	pending ──> assigned ──> picked_up ──> in_transit ──> delivered
//	   │            │ ▲          │              │
//	   │            └─┘          │              │
//	   └────────────┴────────────┴──────────────┴──> cancelled
//
// Reassignment (assigned to assigned) is allowed. delivered and cancelled
// are terminal. Any transition not in the table is rejected.
type Status string

const (
	// StatusPending is the initial status of a freshly created order.
	StatusPending Status = "pending"
	// StatusAssigned indicates a delivery partner has been assigned.
	StatusAssigned Status = "assigned"
	// StatusPickedUp indicates the partner collected the order from the vendor.
	StatusPickedUp Status = "picked_up"
	// StatusInTransit indicates the order is moving toward the customer.
	// Entered automatically by the first location sample after pickup.
	StatusInTransit Status = "in_transit"
	// StatusDelivered is the terminal success status.
	StatusDelivered Status = "delivered"
	// StatusCancelled is the terminal failure status, reachable from any
	// non-terminal status.
	StatusCancelled Status = "cancelled"
)

// transitions is the explicit table of allowed status moves.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusAssigned, StatusCancelled},
		StatusAssigned:  {StatusAssigned, StatusPickedUp, StatusCancelled},
		StatusPickedUp:  {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// Validate rejects any value outside the six known statuses.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is allowed, or an
// IllegalTransitionError describing the rejected move otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", errs.NewIllegalTransitionError(s.String(), next.String())
	}
	return next, nil
}
