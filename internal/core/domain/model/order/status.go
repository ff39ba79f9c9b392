package order

import (
	"fmt"
	"strings"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	   │
//	   └──> Cancelled
//
// Pending is the only initial state. Delivered and Cancelled are terminal.
// Status carries no presentation text; String returns the stable wire name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly created order. Only pending orders can be cancelled.
	Pending

	// Confirmed means a deliverer accepted the order for fulfilment.
	Confirmed

	// Preparing means the items are being picked and packed.
	Preparing

	// ReadyForPickup means the order is packed and waits for a deliverer to claim it.
	ReadyForPickup

	// OutForDelivery means a deliverer claimed the order and is on the way.
	OutForDelivery

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		ReadyForPickup: "READY_FOR_PICKUP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// edge is one arrow of the state machine.
type edge struct {
	from Status
	to   Status
}

// getTransitions returns the legal edges and the party that owns each of them.
func getTransitions() map[edge]Actor {
	return map[edge]Actor{
		{Pending, Confirmed}:             Deliverer,
		{Confirmed, Preparing}:           Deliverer,
		{Preparing, ReadyForPickup}:      Deliverer,
		{ReadyForPickup, OutForDelivery}: Deliverer,
		{OutForDelivery, Delivered}:      Deliverer,
		{Pending, Cancelled}:             Shopper,
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup, OutForDelivery, Delivered, Cancelled}
}

// PreparationStatuses are the statuses of orders that still need work before pickup.
func PreparationStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing}
}

// StatusFromString parses a wire name such as "READY_FOR_PICKUP". Matching is case-insensitive.
func StatusFromString(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresDeliverer reports whether an order in status s must have a deliverer assigned.
func (s Status) RequiresDeliverer() bool {
	return s == OutForDelivery || s == Delivered
}

// ValidateTransition checks that s → to is an edge of the state machine.
// Self transitions such as Pending → Pending are illegal.
func (s Status) ValidateTransition(to Status) error {
	if _, ok := getTransitions()[edge{s, to}]; !ok {
		return errs.NewIllegalTransitionError(s, to)
	}
	return nil
}

// TransitionTo returns the target status if s → to is legal.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := s.ValidateTransition(to); err != nil {
		return Unknown, err
	}
	return to, nil
}

// Owner returns the party allowed to trigger s → to.
func (s Status) Owner(to Status) (Actor, error) {
	actor, ok := getTransitions()[edge{s, to}]
	if !ok {
		return UnknownActor, errs.NewIllegalTransitionError(s, to)
	}
	return actor, nil
}

// ValidateActor checks that actor owns the edge s → to.
// IllegalTransitionError wins over ActorNotPermittedError for edges that do not exist.
func (s Status) ValidateActor(to Status, actor Actor) error {
	owner, err := s.Owner(to)
	if err != nil {
		return err
	}
	if owner != actor {
		return errs.NewActorNotPermittedError(actor, s, to)
	}
	return nil
}

// ValidateCanHaveDeliverer checks the consistency between status and deliverer assignment.
//
// Business Rules:
//   - Pending, Confirmed, Preparing and ReadyForPickup orders have no deliverer
//   - OutForDelivery and Delivered orders have a deliverer
//   - Cancelled orders never had one, since only Pending orders can be cancelled
func (s Status) ValidateCanHaveDeliverer(deliverer bool) error {
	if deliverer && !s.RequiresDeliverer() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a deliverer", s),
		)
	}
	if !deliverer && s.RequiresDeliverer() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no deliverer", s),
		)
	}
	return nil
}
