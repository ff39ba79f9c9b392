package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValidation          = errors.New("validation failed")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrIllegalTransition   = errors.New("illegal transition")
	ErrAlreadyAssigned     = errors.New("already assigned")
	ErrActorNotPermitted   = errors.New("actor is not permitted")
	ErrStorage             = errors.New("storage failure")

	// ErrStaleObject is returned by conditional updates whose precondition no longer
	// holds because another writer changed the stored object first.
	ErrStaleObject = errors.New("object was modified concurrently")
)

// sanitize flattens values into a single line so they can be embedded in error messages.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.Join(strings.Fields(s), " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but breaks a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValidationError groups the field level failures of one input object.
// Both ErrValidation and the cause chain are reachable through errors.Is/As.
type ValidationError struct {
	Subject string
	Cause   error
}

func NewValidationError(subject string) *ValidationError {
	return &ValidationError{Subject: subject}
}

func NewValidationErrorWithCause(subject string, cause error) *ValidationError {
	return &ValidationError{Subject: subject, Cause: cause}
}

func (e *ValidationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValidation, e.Subject), e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// ObjectNotFoundError reports a lookup of an identifier absent from storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
	}
	return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports an insert that collides with a stored identifier.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// IllegalTransitionError reports a status change that is not an edge of a state machine.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String()}
}

func NewIllegalTransitionErrorWithCause(from, to fmt.Stringer, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String(), Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To), e.Cause)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// AlreadyAssignedError reports a claim on an object that already has an assignee.
type AlreadyAssignedError struct {
	ObjectID   string
	AssigneeID string
}

func NewAlreadyAssignedError(objectID, assigneeID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{ObjectID: objectID, AssigneeID: assigneeID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s is assigned to %s", ErrAlreadyAssigned, sanitize(e.ObjectID), sanitize(e.AssigneeID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// ActorNotPermittedError reports a transition triggered by a party that does not own it.
type ActorNotPermittedError struct {
	Actor string
	From  string
	To    string
}

func NewActorNotPermittedError(actor, from, to fmt.Stringer) *ActorNotPermittedError {
	return &ActorNotPermittedError{Actor: actor.String(), From: from.String(), To: to.String()}
}

func (e *ActorNotPermittedError) Error() string {
	return fmt.Sprintf("%s: %s cannot move %s -> %s", ErrActorNotPermitted, e.Actor, e.From, e.To)
}

func (e *ActorNotPermittedError) Unwrap() error {
	return ErrActorNotPermitted
}

// StorageError wraps failures surfaced by a persistence collaborator.
// The original cause stays reachable, so context cancellation can still be detected.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStorage, e.Operation), e.Cause)
}

func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Cause}
}
