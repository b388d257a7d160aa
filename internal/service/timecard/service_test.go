package timecard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompany = "xl4998"

// Friday 12 January 2024, 15:30:45 UTC.
var fixedNow = time.Date(2024, time.January, 12, 15, 30, 45, 0, time.UTC)

func newTestService(t *testing.T) (timecard.TimecardService, employee.Employee) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	d, err := store.Departments().Create(ctx, department.Department{Company: testCompany, Name: "Ops", No: "d1"})
	require.NoError(t, err)
	e, err := store.Employees().Create(ctx, employee.Employee{Name: "A", No: "e1", DeptID: d.ID})
	require.NoError(t, err)

	checker := validator.NewDateTimeChecker(validator.TimestampLayout, time.UTC, clock.NewFakeClock(fixedNow))
	return NewTimecardService(testCompany, checker, store.Employees(), store.Timecards()), e
}

func createReq(empID int, start, end string) timecard.CreateTimecardRequest {
	return timecard.CreateTimecardRequest{Company: testCompany, EmpID: empID, StartTime: start, EndTime: end}
}

func TestTimecardService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("one hour shift is accepted", func(t *testing.T) {
		svc, e := newTestService(t)

		created, err := svc.Create(ctx, createReq(e.ID, "2024-01-10 09:00:00", "2024-01-10 10:00:00"))
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), created.StartTime)
		assert.Equal(t, e.ID, created.EmpID)
	})

	tests := []struct {
		name    string
		empID   int
		company string
		start   string
		end     string
		wantErr error
		code    apperror.Code
	}{
		{"unknown company", 0, "other", "bad", "bad", company.ErrUnknownCompany, apperror.CodeValidation},
		{"missing employee before window", 999, testCompany, "bad", "bad", employee.ErrEmployeeNotFound, apperror.CodeNotFound},
		{"thirty minute shift", -1, testCompany, "2024-01-10 09:00:00", "2024-01-10 09:30:00", validator.ErrShiftTooShort, apperror.CodeValidation},
		{"start older than a week", -1, testCompany, "2024-01-05 09:00:00", "2024-01-05 17:00:00", validator.ErrStartOutsideWindow, apperror.CodeValidation},
		{"start in the future", -1, testCompany, "2024-01-12 16:00:00", "2024-01-12 18:00:00", validator.ErrStartOutsideWindow, apperror.CodeValidation},
		{"spans midnight", -1, testCompany, "2024-01-10 22:00:00", "2024-01-11 02:00:00", validator.ErrShiftSpansDays, apperror.CodeValidation},
		{"malformed", -1, testCompany, "2024-01-10T09:00:00", "2024-01-10 10:00:00", validator.ErrInvalidDateFormat, apperror.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, e := newTestService(t)
			empID := tt.empID
			if empID < 0 {
				empID = e.ID
			}
			req := createReq(empID, tt.start, tt.end)
			req.Company = tt.company

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.code, apperror.GetCode(err))
		})
	}
}

func TestTimecardService_Update(t *testing.T) {
	ctx := context.Background()
	svc, e := newTestService(t)

	created, err := svc.Create(ctx, createReq(e.ID, "2024-01-10 09:00:00", "2024-01-10 10:00:00"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		updated, err := svc.Update(ctx, timecard.UpdateTimecardRequest{
			ID:                    created.ID,
			CreateTimecardRequest: createReq(e.ID, "2024-01-11 08:00:00", "2024-01-11 16:00:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 11, 16, 0, 0, 0, time.UTC), updated.EndTime)
	})

	t.Run("employee is checked before timecard", func(t *testing.T) {
		_, err := svc.Update(ctx, timecard.UpdateTimecardRequest{
			ID:                    999,
			CreateTimecardRequest: createReq(999, "2024-01-11 08:00:00", "2024-01-11 16:00:00"),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("timecard is checked before window", func(t *testing.T) {
		_, err := svc.Update(ctx, timecard.UpdateTimecardRequest{
			ID:                    999,
			CreateTimecardRequest: createReq(e.ID, "bad", "bad"),
		})
		assert.ErrorIs(t, err, timecard.ErrTimecardNotFound)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("window", func(t *testing.T) {
		_, err := svc.Update(ctx, timecard.UpdateTimecardRequest{
			ID:                    created.ID,
			CreateTimecardRequest: createReq(e.ID, "2024-01-11 08:00:00", "2024-01-11 08:59:59"),
		})
		assert.ErrorIs(t, err, timecard.ErrInvalidTimestamps)
	})
}

func TestTimecardService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	svc, e := newTestService(t)

	_, err := svc.List(ctx, testCompany, e.ID)
	assert.ErrorIs(t, err, timecard.ErrNoTimecards)
	assert.True(t, apperror.IsEmptyResult(err))

	_, err = svc.List(ctx, testCompany, 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	created, err := svc.Create(ctx, createReq(e.ID, "2024-01-12 08:00:00", "2024-01-12 15:00:00"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, testCompany, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := svc.List(ctx, testCompany, e.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := svc.Delete(ctx, testCompany, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = svc.Delete(ctx, testCompany, created.ID)
	assert.ErrorIs(t, err, timecard.ErrTimecardNotFound)
}
