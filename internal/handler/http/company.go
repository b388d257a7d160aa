package http

import (
	"net/http"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}

// Delete implements CompanyHandler. It removes every timecard, employee and
// department of the company named by the query.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	name := companyParam(r)

	summary, err := c.companyService.DeleteAll(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	res := company.NewDeleteCompanyResponse(name, summary)
	response.SuccessWithMessage(w, res.Message, res)
}
