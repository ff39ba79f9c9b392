// Package errs provides standardized error types for the grocery order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValidationError: For when a whole input (e.g. a new order) fails validation
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an object with the same identifier exists
//   - IllegalTransitionError: For when a status change is not an edge of the state machine
//   - AlreadyAssignedError: For when a deliverer claim loses against an earlier claim
//   - ActorNotPermittedError: For when the wrong party triggers a transition
//   - StorageError: For failures surfaced by the persistence layer
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels and
// extract details with errors.As against the struct types.
package errs
