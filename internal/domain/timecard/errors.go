package timecard

import "github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"

var (
	ErrTimecardNotFound  = apperror.New(apperror.CodeNotFound, "timecard not found")
	ErrNoTimecards       = apperror.New(apperror.CodeEmptyResult, "there are no timecards")
	ErrInvalidTimestamps = apperror.New(apperror.CodeValidation, "invalid timecard timestamps")
)
