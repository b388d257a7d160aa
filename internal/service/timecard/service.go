package timecard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type timecardServiceImpl struct {
	company      string
	timestamps   *validator.DateTimeChecker
	employeeRepo employee.EmployeeRepository
	timecardRepo timecard.TimecardRepository
}

func NewTimecardService(
	company string,
	timestamps *validator.DateTimeChecker,
	employeeRepo employee.EmployeeRepository,
	timecardRepo timecard.TimecardRepository,
) timecard.TimecardService {
	return &timecardServiceImpl{
		company:      company,
		timestamps:   timestamps,
		employeeRepo: employeeRepo,
		timecardRepo: timecardRepo,
	}
}

func (s *timecardServiceImpl) checkEmployee(ctx context.Context, c string, empID int) error {
	if c != s.company {
		return s.unknownCompany(c)
	}
	if _, err := s.employeeRepo.GetByID(ctx, c, empID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

// parseWindow validates start and end and returns them as instants.
func (s *timecardServiceImpl) parseWindow(start, end string) (time.Time, time.Time, error) {
	if err := s.timestamps.ValidateTimestampWindow(start, end); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", timecard.ErrInvalidTimestamps, err)
	}
	startTime, err := s.timestamps.Parse(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", timecard.ErrInvalidTimestamps, err)
	}
	endTime, err := s.timestamps.Parse(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", timecard.ErrInvalidTimestamps, err)
	}
	return startTime, endTime, nil
}

// Get implements timecard.TimecardService.
func (s *timecardServiceImpl) Get(ctx context.Context, company string, id int) (timecard.Timecard, error) {
	if company != s.company {
		return timecard.Timecard{}, s.unknownCompany(company)
	}

	t, err := s.timecardRepo.GetByID(ctx, company, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.Timecard{}, fmt.Errorf("%w: %w", timecard.ErrTimecardNotFound, err)
		}
		return timecard.Timecard{}, fmt.Errorf("failed to get timecard: %w", err)
	}

	return t, nil
}

// List implements timecard.TimecardService.
func (s *timecardServiceImpl) List(ctx context.Context, company string, empID int) ([]timecard.Timecard, error) {
	if err := s.checkEmployee(ctx, company, empID); err != nil {
		return nil, err
	}

	timecards, err := s.timecardRepo.GetAllByEmployee(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timecards: %w", err)
	}
	if len(timecards) == 0 {
		return nil, timecard.ErrNoTimecards
	}

	return timecards, nil
}

// Create implements timecard.TimecardService.
func (s *timecardServiceImpl) Create(ctx context.Context, req timecard.CreateTimecardRequest) (timecard.Timecard, error) {
	if err := s.checkEmployee(ctx, req.Company, req.EmpID); err != nil {
		return timecard.Timecard{}, err
	}

	start, end, err := s.parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return timecard.Timecard{}, err
	}

	created, err := s.timecardRepo.Create(ctx, timecard.Timecard{
		StartTime: start,
		EndTime:   end,
		EmpID:     req.EmpID,
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return timecard.Timecard{}, fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
		}
		return timecard.Timecard{}, fmt.Errorf("failed to create timecard: %w", err)
	}

	return created, nil
}

// Update implements timecard.TimecardService.
func (s *timecardServiceImpl) Update(ctx context.Context, req timecard.UpdateTimecardRequest) (timecard.Timecard, error) {
	if err := s.checkEmployee(ctx, req.Company, req.EmpID); err != nil {
		return timecard.Timecard{}, err
	}
	if _, err := s.Get(ctx, req.Company, req.ID); err != nil {
		return timecard.Timecard{}, err
	}

	start, end, err := s.parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return timecard.Timecard{}, err
	}

	updated, err := s.timecardRepo.Update(ctx, timecard.Timecard{
		ID:        req.ID,
		StartTime: start,
		EndTime:   end,
		EmpID:     req.EmpID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return timecard.Timecard{}, fmt.Errorf("%w: %w", timecard.ErrTimecardNotFound, err)
		case database.IsForeignKeyViolation(err):
			return timecard.Timecard{}, fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
		}
		return timecard.Timecard{}, fmt.Errorf("failed to update timecard: %w", err)
	}

	return updated, nil
}

// Delete implements timecard.TimecardService.
func (s *timecardServiceImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	if _, err := s.Get(ctx, company, id); err != nil {
		return 0, err
	}

	n, err := s.timecardRepo.Delete(ctx, company, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timecard: %w", err)
	}

	return n, nil
}

func (s *timecardServiceImpl) unknownCompany(c string) error {
	return fmt.Errorf("%w: %q", company.ErrUnknownCompany, c)
}
