package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates the two business-person variants. Employers may manage
// direct reports; employees may not.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindEmployer Kind = "employer"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// Person is a business person: an employee or an employer. Email is unique
// across the whole system. ManagerID, when set, must reference an employer;
// the hierarchy graph owns the cycle check.
type Person struct {
	ID        int64
	CompanyID int64
	Kind      Kind
	FullName  string
	Email     string
	Salary    decimal.Decimal
	HireDate  time.Time
	Status    Status
	ManagerID *int64

	// Employee-only
	Position *string

	// Employer-only
	Department *string
	Title      *string
	IsAdmin    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanManage reports whether this person may hold direct reports.
func (p Person) CanManage() bool {
	return p.Kind == KindEmployer
}
