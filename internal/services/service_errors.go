// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// DetailError carries a client-facing message and matches its sentinel with errors.Is.
type DetailError struct {
	Sentinel error
	Detail   string
}

func (e *DetailError) Error() string {
	return e.Detail
}

func (e *DetailError) Is(target error) bool {
	return target == e.Sentinel
}

// DetailOf returns the client-facing message of err, or fallback if it has none.
func DetailOf(err error, fallback string) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return fallback
}

func invalid(detail string) error {
	return &DetailError{Sentinel: ErrValidation, Detail: detail}
}

func notFound(detail string) error {
	return &DetailError{Sentinel: ErrNotFound, Detail: detail}
}
