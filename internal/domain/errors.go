package domain

import "errors"

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindNoAvailability
	KindConflict
	KindInvalidState
)

// Error is the taxonomy surfaced to API clients. Message is safe to return
// to the caller as-is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func ValidationError(msg string) error      { return &Error{Kind: KindValidation, Message: msg} }
func UnauthenticatedError(msg string) error { return &Error{Kind: KindUnauthenticated, Message: msg} }
func ForbiddenError(msg string) error       { return &Error{Kind: KindForbidden, Message: msg} }
func NotFoundError(msg string) error        { return &Error{Kind: KindNotFound, Message: msg} }
func NoAvailabilityError(msg string) error  { return &Error{Kind: KindNoAvailability, Message: msg} }
func ConflictError(msg string) error        { return &Error{Kind: KindConflict, Message: msg} }
func InvalidStateError(msg string) error    { return &Error{Kind: KindInvalidState, Message: msg} }

// KindOf unwraps err to its taxonomy kind, KindUnknown for anything that is
// not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
