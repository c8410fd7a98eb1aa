package httperr

import "errors"

// Kind classifies a BusinessError; it decides the HTTP status.
type Kind int

const (
	KindPrecondition Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Kind   Kind
	Code   string
	Fields map[string]string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness is a rule violation on otherwise valid input, such as settling a
// lead that is not in a closing stage.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindPrecondition, Code: code}
}

func ErrValidation(code string, fields map[string]string) error {
	return BusinessError{Kind: KindValidation, Code: code, Fields: fields}
}

func ErrUnauthenticated(code string) error {
	return BusinessError{Kind: KindUnauthenticated, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
