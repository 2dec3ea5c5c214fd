package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

// BusinessError is an expected failure that maps to a client-facing
// status code. Anything else reaching Respond is treated as internal.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e BusinessError) Error() string {
	return e.Code
}

// WithField returns a copy of e with one more field message attached.
func (e BusinessError) WithField(name, message string) BusinessError {
	fields := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields[name] = message
	e.Fields = fields
	return e
}

func ErrBusiness(kind Kind, code, message string) BusinessError {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) BusinessError {
	return ErrBusiness(KindValidation, code, message)
}

func Auth(code, message string) BusinessError {
	return ErrBusiness(KindAuth, code, message)
}

func Forbidden(code, message string) BusinessError {
	return ErrBusiness(KindForbidden, code, message)
}

func NotFoundErr(code, message string) BusinessError {
	return ErrBusiness(KindNotFound, code, message)
}

func Conflict(code, message string) BusinessError {
	return ErrBusiness(KindConflict, code, message)
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
