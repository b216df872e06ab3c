package authz

import "errors"

var ErrForbidden = errors.New("not allowed to act on this person")
