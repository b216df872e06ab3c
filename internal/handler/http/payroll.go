package http

import (
	"encoding/json"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputePaycheck(w http.ResponseWriter, r *http.Request)
	GetPaycheck(w http.ResponseWriter, r *http.Request)
	ListPaychecks(w http.ResponseWriter, r *http.Request)
	UpdatePaycheck(w http.ResponseWriter, r *http.Request)
	TransitionPaycheck(w http.ResponseWriter, r *http.Request)
	VoidPaycheck(w http.ResponseWriter, r *http.Request)
	DeletePaycheck(w http.ResponseWriter, r *http.Request)
	ListStrategies(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) ComputePaycheck(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(r, "employeeId")
	if !ok {
		response.BadRequest(w, "Employee ID must be a positive integer", nil)
		return
	}

	var req payroll.ComputePaycheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.payrollService.ComputePaycheck(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Paycheck computed", result)
}

func (h *payrollHandlerImpl) GetPaycheck(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Paycheck ID must be a positive integer", nil)
		return
	}

	result, err := h.payrollService.GetPaycheck(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPaychecks(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(r, "employeeId")
	if !ok {
		response.BadRequest(w, "Employee ID must be a positive integer", nil)
		return
	}

	result, err := h.payrollService.ListPaychecks(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePaycheck(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Paycheck ID must be a positive integer", nil)
		return
	}

	var req payroll.UpdatePaycheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.UpdatePaycheck(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) TransitionPaycheck(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Paycheck ID must be a positive integer", nil)
		return
	}

	var req payroll.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.TransitionPaycheck(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) VoidPaycheck(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Paycheck ID must be a positive integer", nil)
		return
	}

	result, err := h.payrollService.VoidPaycheck(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Paycheck voided", result)
}

func (h *payrollHandlerImpl) DeletePaycheck(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Paycheck ID must be a positive integer", nil)
		return
	}

	if err := h.payrollService.DeletePaycheck(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Paycheck deleted", nil)
}

func (h *payrollHandlerImpl) ListStrategies(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.payrollService.ListStrategyNames(r.Context()))
}
