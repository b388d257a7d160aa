package department

import "github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Company  string `json:"company"`
	Name     string `json:"dept_name"`
	No       string `json:"dept_no"`
	Location string `json:"location"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Required(errs, "company", r.Company, 64)
	errs = validator.Required(errs, "dept_name", r.Name, 255)
	errs = validator.Required(errs, "dept_no", r.No, 20)
	if validator.ExceedsLength(r.Location, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	Company  string `json:"company"`
	ID       int    `json:"dept_id"`
	Name     string `json:"dept_name"`
	No       string `json:"dept_no"`
	Location string `json:"location"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Positive(errs, "dept_id", r.ID)
	create := CreateDepartmentRequest{Company: r.Company, Name: r.Name, No: r.No, Location: r.Location}
	errs, err := validator.Merge(errs, create.Validate())
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID       int    `json:"dept_id"`
	Company  string `json:"company"`
	Name     string `json:"dept_name"`
	No       string `json:"dept_no"`
	Location string `json:"location"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:       d.ID,
		Company:  d.Company,
		Name:     d.Name,
		No:       d.No,
		Location: d.Location,
	}
}

func NewDepartmentResponses(ds []Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(ds))
	for _, d := range ds {
		responses = append(responses, NewDepartmentResponse(d))
	}
	return responses
}
