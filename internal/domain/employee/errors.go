package employee

import "github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.CodeNotFound, "employee not found")
	ErrNoEmployees      = apperror.New(apperror.CodeEmptyResult, "there are no employees")
	ErrInvalidHireDate  = apperror.New(apperror.CodeValidation, "invalid hire date")
	ErrManagerNotFound  = apperror.New(apperror.CodeValidation, "manager does not exist")
	ErrEmployeeNoExists = apperror.New(apperror.CodeValidation, "employee no already exists")
	ErrEmployeeInUse    = apperror.New(apperror.CodeValidation, "employee still has timecards")
)
