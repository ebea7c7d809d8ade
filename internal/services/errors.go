package services

import "errors"

// Business errors surfaced by the services. Handlers map these onto HTTP
// status codes with errors.Is; anything not in this list is treated as an
// infrastructure failure.
var (
	ErrValidation           = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbidden            = errors.New("access denied")
	ErrUserNotFound         = errors.New("user not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrVacancyFull          = errors.New("all vacancies have been filled")
)
