package department

import "github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"

var (
	ErrDepartmentNotFound = apperror.New(apperror.CodeNotFound, "department not found")
	ErrNoDepartments      = apperror.New(apperror.CodeEmptyResult, "there are no departments")
	ErrDepartmentNoExists = apperror.New(apperror.CodeValidation, "department no is not unique")
	ErrDepartmentInUse    = apperror.New(apperror.CodeValidation, "department still has employees")
)
