package employee

import (
	"encoding/json"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Company  string          `json:"company"`
	Name     string          `json:"emp_name"`
	No       string          `json:"emp_no"`
	HireDate string          `json:"hire_date"`
	Job      string          `json:"job"`
	Salary   decimal.Decimal `json:"salary"`
	DeptID   int             `json:"dept_id"`
	MngID    int             `json:"mng_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Required(errs, "company", r.Company, 64)
	errs = validator.Required(errs, "emp_name", r.Name, 255)
	errs = validator.Required(errs, "emp_no", r.No, 20)
	errs = validator.Required(errs, "hire_date", r.HireDate, 0)
	errs = validator.Required(errs, "job", r.Job, 255)
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	errs = validator.Positive(errs, "dept_id", r.DeptID)
	if r.MngID < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "mng_id",
			Message: "mng_id must be 0 or an employee id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID int `json:"emp_id"`
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Positive(errs, "emp_id", r.ID)
	errs, err := validator.Merge(errs, r.CreateEmployeeRequest.Validate())
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID       int         `json:"emp_id"`
	Name     string      `json:"emp_name"`
	No       string      `json:"emp_no"`
	HireDate string      `json:"hire_date"`
	Job      string      `json:"job"`
	Salary   json.Number `json:"salary"`
	DeptID   int         `json:"dept_id"`
	MngID    int         `json:"mng_id"`
}

// NewEmployeeResponse renders e with hire_date in dateLayout and the salary
// rounded to cents.
func NewEmployeeResponse(e Employee, dateLayout string) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		No:       e.No,
		HireDate: e.HireDate.Format(dateLayout),
		Job:      e.Job,
		Salary:   json.Number(e.Salary.StringFixed(2)),
		DeptID:   e.DeptID,
		MngID:    e.MngID,
	}
}

func NewEmployeeResponses(es []Employee, dateLayout string) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(es))
	for _, e := range es {
		responses = append(responses, NewEmployeeResponse(e, dateLayout))
	}
	return responses
}
