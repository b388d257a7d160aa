package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/response"
	"github.com/shopspring/decimal"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	dateLayout      string
}

// NewEmployeeHandler renders hire dates with dateLayout.
func NewEmployeeHandler(employeeService employee.EmployeeService, dateLayout string) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		dateLayout:      dateLayout,
	}
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context(), companyParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponses(employees, h.dateLayout))
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "emp_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"emp_id": "emp_id must be an integer"})
		return
	}

	e, err := h.employeeService.Get(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponse(e, h.dateLayout))
}

// CreateEmployee implements EmployeeHandler. Input is form encoded; mng_id
// may be omitted.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse form", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	details := map[string]string{}
	salary, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("salary")))
	if err != nil {
		details["salary"] = "salary must be a number"
	}
	deptID, ok := formInt(r, "dept_id", false)
	if !ok {
		details["dept_id"] = "dept_id must be an integer"
	}
	mngID, ok := formInt(r, "mng_id", true)
	if !ok {
		details["mng_id"] = "mng_id must be an integer"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid request format", details)
		return
	}

	req := employee.CreateEmployeeRequest{
		Company:  r.FormValue("company"),
		Name:     r.FormValue("emp_name"),
		No:       r.FormValue("emp_no"),
		HireDate: r.FormValue("hire_date"),
		Job:      r.FormValue("job"),
		Salary:   salary,
		DeptID:   deptID,
		MngID:    mngID,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.NewEmployeeResponse(created, h.dateLayout))
}

// UpdateEmployee implements EmployeeHandler. Input is JSON.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.NewEmployeeResponse(updated, h.dateLayout))
}

// DeleteEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "emp_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"emp_id": "emp_id must be an integer"})
		return
	}

	n, err := h.employeeService.Delete(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Employee %d deleted", id), DeleteResponse{Deleted: n})
}
