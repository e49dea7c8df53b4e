package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrChartNotFound    = errors.New("natal chart not found")
	ErrBirthDataNotSet  = errors.New("birth data is not set")
	ErrPremiumRequired  = errors.New("premium access required")
	ErrComparisonLimit  = errors.New("free comparisons limit reached")
	ErrStorageDisabled  = errors.New("chart storage is not configured")
	ErrLocationNotFound = errors.New("location not found")
	ErrCacheMiss        = errors.New("cache miss")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
