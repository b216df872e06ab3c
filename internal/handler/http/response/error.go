package response

import (
	"errors"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/domain/company"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/hierarchy"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every known error kind
// gets its own status so clients never have to parse message text.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Authorization
	case errors.Is(err, authz.ErrForbidden):
		Forbidden(w, "Not allowed to act on this person")

	// Hierarchy errors
	case errors.Is(err, hierarchy.ErrCycleDetected):
		Conflict(w, "Manager assignment would create a cycle")
	case errors.Is(err, hierarchy.ErrNotAnEmployer):
		UnprocessableEntity(w, "Manager must be an employer")
	case errors.Is(err, hierarchy.ErrPersonNotFound):
		NotFound(w, "Person not found in hierarchy")

	// Tax strategy errors
	case errors.Is(err, tax.ErrUnknownStrategy):
		NotFound(w, "Unknown tax strategy")
	case errors.Is(err, tax.ErrDuplicateStrategyName):
		Conflict(w, "Tax strategy name already registered")
	case errors.Is(err, tax.ErrInvalidRate), errors.Is(err, tax.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Paycheck errors
	case errors.Is(err, payroll.ErrPaycheckNotFound):
		NotFound(w, "Paycheck not found")
	case errors.Is(err, payroll.ErrIllegalStatusTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPaycheckLocked):
		Conflict(w, "Paycheck is locked and can no longer be modified")
	case errors.Is(err, payroll.ErrStatusConflict):
		Conflict(w, "Paycheck status changed concurrently, retry with current status")
	case errors.Is(err, payroll.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Person domain errors
	case errors.Is(err, employee.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrPositionRequired):
		UnprocessableEntity(w, "Position is required for employees")
	case errors.Is(err, employee.ErrHasPaychecks):
		Conflict(w, "Person still has paychecks and cannot be deleted")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
