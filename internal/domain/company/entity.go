package company

import "time"

type Company struct {
	ID        int64
	Name      string
	Industry  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
