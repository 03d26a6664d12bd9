// Package errs provides the error taxonomy shared by the planning core.
//
// Every error type follows the same shape:
//   - a sentinel variable usable with errors.Is (e.g. ErrObjectNotFound)
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for a single-line message and Unwrap() returning the sentinel
//
// The categories map onto the outcomes callers must tell apart:
//   - ObjectNotFoundError: a referenced order, group, truck or lane does not exist
//   - PreconditionFailedError: an entity is in a state that forbids the operation
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input
//
// Missing master data is deliberately not an error: the classifier blocks the
// order and records a reason instead.
package errs
