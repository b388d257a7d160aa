package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timecardRepositoryImpl struct {
	db *database.DB
}

func NewTimecardRepository(db *database.DB) timecard.TimecardRepository {
	return &timecardRepositoryImpl{db: db}
}

// GetAllByEmployee implements timecard.TimecardRepository.
func (r *timecardRepositoryImpl) GetAllByEmployee(ctx context.Context, empID int) ([]timecard.Timecard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT timecard_id, start_time, end_time, emp_id
		FROM timecards
		WHERE emp_id = $1
		ORDER BY timecard_id ASC
	`

	rows, err := q.Query(ctx, query, empID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timecards: %w", err)
	}
	defer rows.Close()

	var timecards []timecard.Timecard
	for rows.Next() {
		var t timecard.Timecard
		if err := rows.Scan(&t.ID, &t.StartTime, &t.EndTime, &t.EmpID); err != nil {
			return nil, fmt.Errorf("failed to scan timecard: %w", err)
		}
		timecards = append(timecards, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return timecards, nil
}

// GetByID implements timecard.TimecardRepository.
func (r *timecardRepositoryImpl) GetByID(ctx context.Context, company string, id int) (timecard.Timecard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.timecard_id, t.start_time, t.end_time, t.emp_id
		FROM timecards t
		JOIN employees e ON e.emp_id = t.emp_id
		JOIN departments d ON d.dept_id = e.dept_id
		WHERE d.company = $1 AND t.timecard_id = $2
	`

	var result timecard.Timecard
	err := q.QueryRow(ctx, query, company, id).Scan(
		&result.ID,
		&result.StartTime,
		&result.EndTime,
		&result.EmpID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.Timecard{}, fmt.Errorf("timecard %d: %w", id, err)
		}
		return timecard.Timecard{}, fmt.Errorf("failed to get timecard: %w", err)
	}

	return result, nil
}

// Create implements timecard.TimecardRepository.
func (r *timecardRepositoryImpl) Create(ctx context.Context, t timecard.Timecard) (timecard.Timecard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timecards (start_time, end_time, emp_id)
		VALUES ($1, $2, $3)
		RETURNING timecard_id, start_time, end_time, emp_id
	`

	var result timecard.Timecard
	err := q.QueryRow(ctx, query, t.StartTime, t.EndTime, t.EmpID).Scan(
		&result.ID,
		&result.StartTime,
		&result.EndTime,
		&result.EmpID,
	)
	if err != nil {
		return timecard.Timecard{}, fmt.Errorf("failed to create timecard: %w", err)
	}

	return result, nil
}

// Update implements timecard.TimecardRepository.
func (r *timecardRepositoryImpl) Update(ctx context.Context, t timecard.Timecard) (timecard.Timecard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timecards AS t
		SET start_time = $1, end_time = $2, emp_id = $3
		WHERE t.timecard_id = $4
		RETURNING t.timecard_id, t.start_time, t.end_time, t.emp_id
	`

	var result timecard.Timecard
	err := q.QueryRow(ctx, query, t.StartTime, t.EndTime, t.EmpID, t.ID).Scan(
		&result.ID,
		&result.StartTime,
		&result.EndTime,
		&result.EmpID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timecard.Timecard{}, fmt.Errorf("timecard %d: %w", t.ID, err)
		}
		return timecard.Timecard{}, fmt.Errorf("failed to update timecard: %w", err)
	}

	return result, nil
}

// Delete implements timecard.TimecardRepository.
func (r *timecardRepositoryImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timecards t
		USING employees e, departments d
		WHERE e.emp_id = t.emp_id
			AND d.dept_id = e.dept_id
			AND d.company = $1
			AND t.timecard_id = $2
	`

	commandTag, err := q.Exec(ctx, query, company, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timecard: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
