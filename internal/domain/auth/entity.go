package auth

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
)

// User is a login account. PersonID links the account to the business person
// it acts as; admin-only service accounts may have none.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	PersonID     *int64
	Role         authz.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
