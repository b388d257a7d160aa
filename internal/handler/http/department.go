package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
	}
}

// ListDepartments implements DepartmentHandler.
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context(), companyParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, department.NewDepartmentResponses(departments))
}

// GetDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "dept_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"dept_id": "dept_id must be an integer"})
		return
	}

	d, err := h.departmentService.Get(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, department.NewDepartmentResponse(d))
}

// CreateDepartment implements DepartmentHandler. Input is form encoded.
func (h *departmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse form", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := department.CreateDepartmentRequest{
		Company:  r.FormValue("company"),
		Name:     r.FormValue("dept_name"),
		No:       r.FormValue("dept_no"),
		Location: r.FormValue("location"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", department.NewDepartmentResponse(created))
}

// UpdateDepartment implements DepartmentHandler. Input is JSON.
func (h *departmentHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.departmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", department.NewDepartmentResponse(updated))
}

// DeleteDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "dept_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"dept_id": "dept_id must be an integer"})
		return
	}

	n, err := h.departmentService.Delete(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Department %d deleted", id), DeleteResponse{Deleted: n})
}

// DeleteResponse reports how many rows a delete removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
