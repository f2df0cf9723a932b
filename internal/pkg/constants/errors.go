package constants

import "net/http"

// CodedError is a domain error carrying the HTTP status it should be
// reported with. The api error handler unwraps down to the first CodedError
// it finds.
type CodedError struct {
	message string
	code    int
}

func NewCodedError(message string, code int) *CodedError {
	return &CodedError{message: message, code: code}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError("record not found", http.StatusNotFound)

	ErrInvalidUnit          = NewCodedError("invalid weight unit", http.StatusBadRequest)
	ErrInvalidMeasureType   = NewCodedError("invalid measure type", http.StatusBadRequest)
	ErrMissingAverageWeight = NewCodedError("average weight not defined for this waste", http.StatusBadRequest)

	ErrUnauthorized       = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthHeader  = NewCodedError("authorization header missing or malformed", http.StatusUnauthorized)
	ErrTokenExpired       = NewCodedError("token expired", http.StatusUnauthorized)
	ErrInvalidToken       = NewCodedError("invalid token", http.StatusUnauthorized)
	ErrInvalidCredentials = NewCodedError("invalid credentials", http.StatusUnauthorized)
	ErrEmailAlreadyTaken  = NewCodedError("email already in use", http.StatusBadRequest)
)
