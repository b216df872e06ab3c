package hierarchy

import "errors"

var (
	ErrCycleDetected  = errors.New("manager assignment would create a cycle")
	ErrNotAnEmployer  = errors.New("manager must be an employer")
	ErrPersonNotFound = errors.New("person not found in hierarchy")
)
