package employee

import "errors"

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrPositionRequired = errors.New("position is required for employees")
	ErrHasPaychecks     = errors.New("person still has paychecks and cannot be deleted")
)
