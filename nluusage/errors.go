package nluusage

import (
	"github.com/pkg/errors"

	"github.com/alphagov/paas-nlu-usage/orgresolver"
	"github.com/alphagov/paas-nlu-usage/params"
	"github.com/alphagov/paas-nlu-usage/uaa"
)

// Kind classifies a failed operation
type Kind string

const (
	MissingParameter     Kind = "MissingParameter"
	InvalidParameter     Kind = "InvalidParameter"
	AuthenticationFailed Kind = "AuthenticationFailed"
	OrganizationNotFound Kind = "OrganizationNotFound"
	TransportFailure     Kind = "TransportFailure"
)

// Sentinels for use with errors.Is. They match any *Error of the same Kind.
var (
	ErrMissingParameter     = &Error{Kind: MissingParameter}
	ErrInvalidParameter     = &Error{Kind: InvalidParameter}
	ErrAuthenticationFailed = &Error{Kind: AuthenticationFailed}
	ErrOrganizationNotFound = &Error{Kind: OrganizationNotFound}
	ErrTransportFailure     = &Error{Kind: TransportFailure}
)

// Error is the only error type returned by Client operations. Message is
// the message of the underlying failure; for TransportFailure that is the
// root cause without the context packages add while wrapping it. Unwrap
// returns the full chain.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrap classifies err by its cause. Anything unrecognised happened on the
// way to or from a remote service.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var (
		clientErr   *Error
		missingErr  *params.MissingError
		authErr     *uaa.AuthenticationError
		notFoundErr *orgresolver.NotFoundError
	)
	switch {
	case errors.As(err, &clientErr):
		return clientErr
	case errors.As(err, &missingErr):
		return &Error{Kind: MissingParameter, Message: missingErr.Error(), cause: err}
	case errors.As(err, &authErr):
		return &Error{Kind: AuthenticationFailed, Message: authErr.Error(), cause: err}
	case errors.As(err, &notFoundErr):
		return &Error{Kind: OrganizationNotFound, Message: notFoundErr.Error(), cause: err}
	default:
		return &Error{Kind: TransportFailure, Message: errors.Cause(err).Error(), cause: err}
	}
}
