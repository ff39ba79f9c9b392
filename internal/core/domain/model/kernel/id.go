package kernel

import (
	"strings"

	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when an ID was not created via NewID or IDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is an opaque identifier. Order ids come from clients ("ORD100") or are generated
// with NewID; shopper and deliverer ids come from the external account provider.
type ID struct {
	value string
}

// NewID generates a random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps an externally supplied identifier. Surrounding whitespace is
// trimmed; blank strings are rejected.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrIDIsNotConstructed
	}
	return ID{value: s}, nil
}

// MustIDFromString is IDFromString for literals known to be valid. It panics otherwise.
func MustIDFromString(s string) ID {
	id, err := IDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) String() string {
	return i.value
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate reports whether the ID was built by a constructor.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
