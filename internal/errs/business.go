package errs

import (
	"errors"
	"net/http"
)

// Kind classifies a BusinessError.
type Kind int

const (
	// KindNotFound: a referenced entity id does not resolve.
	KindNotFound Kind = iota + 1
	// KindPreconditionFailed: both entities exist but are not associated.
	KindPreconditionFailed
	// KindNegativePrice: a cafe price below zero.
	KindNegativePrice
	// KindInvalidPhone: a tienda phone that is not exactly 10 characters.
	KindInvalidPhone
	// KindBadRequest: any other malformed input.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindPreconditionFailed:
		return "PRECONDITION_FAILED"
	case KindNegativePrice:
		return "NEGATIVE_PRICE"
	case KindInvalidPhone:
		return "INVALID_PHONE"
	case KindBadRequest:
		return "BAD_REQUEST"
	default:
		return "UNKNOWN"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case KindNegativePrice, KindInvalidPhone, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// BusinessError is a domain rule violation raised by the service layer.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError returns a *BusinessError of the given kind.
func NewBusinessError(kind Kind, message string) *BusinessError {
	return &BusinessError{Kind: kind, Message: message}
}

// HTTPError converts the business error into the client-facing shape.
func (e *BusinessError) HTTPError() *HTTPError {
	switch e.Kind {
	case KindNotFound:
		return NewNotFoundError(e.Message, true, nil)
	case KindPreconditionFailed:
		return NewPreconditionFailedError(e.Message, true)
	case KindNegativePrice, KindInvalidPhone:
		code := e.Kind.String()
		return NewBadRequestError(e.Message, true, &code, nil, nil)
	case KindBadRequest:
		return NewBadRequestError(e.Message, true, nil, nil, nil)
	default:
		return NewInternalServerError()
	}
}

// KindOf returns the Kind of the first BusinessError in err's chain, or 0.
func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}

// IsKind reports whether err carries a BusinessError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
