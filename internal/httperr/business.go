package httperr

import "errors"

// Kind classifies a business error so the HTTP layer can pick a status.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func Validation(message string) *BusinessError {
	return &BusinessError{Kind: KindValidation, Message: message}
}

func Conflict(message string) *BusinessError {
	return &BusinessError{Kind: KindConflict, Message: message}
}

func NotFoundErr(message string) *BusinessError {
	return &BusinessError{Kind: KindNotFound, Message: message}
}

// KindOf returns the kind of the first BusinessError in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func messageOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	return msgInternal
}
