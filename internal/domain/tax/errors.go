package tax

import "errors"

var (
	ErrDuplicateStrategyName = errors.New("tax strategy name already registered")
	ErrUnknownStrategy       = errors.New("unknown tax strategy")
	ErrInvalidRate           = errors.New("tax rate must be between 0 and 1")
	ErrInvalidInput          = errors.New("gross pay must be non-negative")
)
