package company

import "github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"

var (
	ErrUnknownCompany  = apperror.New(apperror.CodeValidation, "unknown company")
	ErrCompanyNotEmpty = apperror.New(apperror.CodeInternal, "company still has departments or employees after delete")
)
