package order

import (
	"fmt"
	"strings"

	"grocery/internal/pkg/errs"
)

// Actor is the party that triggers a transition.
type Actor int

const (
	UnknownActor Actor = iota
	Shopper
	Deliverer
)

func (a Actor) String() string {
	switch a {
	case Shopper:
		return "shopper"
	case Deliverer:
		return "deliverer"
	default:
		return "unknown"
	}
}

// ActorFromString parses "shopper" or "deliverer" (case-insensitive).
func ActorFromString(s string) (Actor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shopper":
		return Shopper, nil
	case "deliverer":
		return Deliverer, nil
	default:
		return UnknownActor, errs.NewValueIsInvalidErrorWithCause(
			"actor is invalid",
			fmt.Errorf("%q is not a valid actor", s),
		)
	}
}
