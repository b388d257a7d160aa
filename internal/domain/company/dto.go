package company

import "fmt"

type DeleteCompanyResponse struct {
	Company     string `json:"company"`
	Departments int64  `json:"departments_deleted"`
	Employees   int64  `json:"employees_deleted"`
	Timecards   int64  `json:"timecards_deleted"`
	Message     string `json:"message"`
}

func NewDeleteCompanyResponse(company string, s DeleteSummary) DeleteCompanyResponse {
	return DeleteCompanyResponse{
		Company:     company,
		Departments: s.Departments,
		Employees:   s.Employees,
		Timecards:   s.Timecards,
		Message:     fmt.Sprintf("%s's information deleted", company),
	}
}
