// Package memory is an in-process implementation of the repository
// contracts. It enforces the same unique and foreign key constraints as the
// PostgreSQL schema and reports violations as *pgconn.PgError, so services
// behave identically against either backend.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type tables struct {
	departments map[int]department.Department
	employees   map[int]employee.Employee
	timecards   map[int]timecard.Timecard
}

func (t tables) clone() tables {
	return tables{
		departments: maps.Clone(t.departments),
		employees:   maps.Clone(t.employees),
		timecards:   maps.Clone(t.timecards),
	}
}

type Store struct {
	// txMu is held exclusively by a running transaction and shared by
	// every repository call made outside one, so a rollback never erases
	// writes it did not make.
	txMu sync.RWMutex
	mu   sync.Mutex
	data tables

	nextDeptID     int
	nextEmpID      int
	nextTimecardID int

	// FailOn, when set, is consulted before every mutating call with the
	// operation name ("department.Delete", "employee.Create", ...). A non-nil
	// result is returned instead of performing the operation.
	FailOn func(op string) error
}

func NewStore() *Store {
	return &Store{
		data: tables{
			departments: map[int]department.Department{},
			employees:   map[int]employee.Employee{},
			timecards:   map[int]timecard.Timecard{},
		},
	}
}

func (s *Store) Departments() department.DepartmentRepository {
	return &departmentRepository{s}
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{s}
}

func (s *Store) Timecards() timecard.TimecardRepository {
	return &timecardRepository{s}
}

// Transactor restores every table to its state before fn when fn fails.
func (s *Store) Transactor() company.Transactor {
	return transactor{s}
}

// Counts returns the number of departments, employees and timecards stored.
func (s *Store) Counts() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.departments), len(s.data.employees), len(s.data.timecards)
}

func (s *Store) fail(op string) error {
	if s.FailOn == nil {
		return nil
	}
	return s.FailOn(op)
}

func (s *Store) companyOf(deptID int) (string, bool) {
	d, ok := s.data.departments[deptID]
	return d.Company, ok
}

func (s *Store) employeeInCompany(company string, empID int) (employee.Employee, bool) {
	e, ok := s.data.employees[empID]
	if !ok {
		return employee.Employee{}, false
	}
	c, ok := s.companyOf(e.DeptID)
	return e, ok && c == company
}

func sortedValues[T any](m map[int]T, keep func(T) bool) []T {
	var out []T
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if keep(m[k]) {
			out = append(out, m[k])
		}
	}
	return out
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, pgx.ErrNoRows)
}

func violation(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "constraint " + constraint + " violated"}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// guard blocks while another caller's transaction is running. Calls made
// with the transaction's own context pass straight through.
func (s *Store) guard(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.txMu.RLock()
	return s.txMu.RUnlock
}

type transactor struct {
	s *Store
}

// WithinTransaction implements company.Transactor. Transactions on the same
// store are serialized and a nested call joins the outer one.
func (t transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.s.inTx(ctx) {
		return fn(ctx)
	}

	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	snapshot := t.s.data.clone()
	t.s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, t.s)); err != nil {
		t.s.mu.Lock()
		t.s.data = snapshot
		t.s.mu.Unlock()
		return err
	}
	return nil
}

type departmentRepository struct {
	s *Store
}

func (r *departmentRepository) GetAll(ctx context.Context, company string) ([]department.Department, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.data.departments, func(d department.Department) bool { return d.Company == company }), nil
}

func (r *departmentRepository) GetByID(ctx context.Context, company string, id int) (department.Department, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.data.departments[id]
	if !ok || d.Company != company {
		return department.Department{}, notFound("department", id)
	}
	return d, nil
}

func (r *departmentRepository) duplicate(d department.Department) bool {
	for _, other := range r.s.data.departments {
		if other.ID != d.ID && other.Company == d.Company && other.No == d.No {
			return true
		}
	}
	return false
}

func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	if err := r.s.fail("department.Create"); err != nil {
		return department.Department{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = 0
	if r.duplicate(d) {
		return department.Department{}, violation(database.UniqueViolation, "departments_company_dept_no_key")
	}
	r.s.nextDeptID++
	d.ID = r.s.nextDeptID
	r.s.data.departments[d.ID] = d
	return d, nil
}

func (r *departmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	if err := r.s.fail("department.Update"); err != nil {
		return department.Department{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.departments[d.ID]
	if !ok || current.Company != d.Company {
		return department.Department{}, notFound("department", d.ID)
	}
	if r.duplicate(d) {
		return department.Department{}, violation(database.UniqueViolation, "departments_company_dept_no_key")
	}
	r.s.data.departments[d.ID] = d
	return d, nil
}

func (r *departmentRepository) Delete(ctx context.Context, company string, id int) (int64, error) {
	if err := r.s.fail("department.Delete"); err != nil {
		return 0, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.data.departments[id]
	if !ok || d.Company != company {
		return 0, nil
	}
	for _, e := range r.s.data.employees {
		if e.DeptID == id {
			return 0, violation(database.ForeignKeyViolation, "employees_dept_id_fkey")
		}
	}
	delete(r.s.data.departments, id)
	return 1, nil
}

type employeeRepository struct {
	s *Store
}

func (r *employeeRepository) GetAll(ctx context.Context, company string) ([]employee.Employee, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.data.employees, func(e employee.Employee) bool {
		c, ok := r.s.companyOf(e.DeptID)
		return ok && c == company
	}), nil
}

func (r *employeeRepository) GetByID(ctx context.Context, company string, id int) (employee.Employee, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.employeeInCompany(company, id)
	if !ok {
		return employee.Employee{}, notFound("employee", id)
	}
	return e, nil
}

func (r *employeeRepository) GetByNo(ctx context.Context, no string) ([]employee.Employee, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.data.employees, func(e employee.Employee) bool { return e.No == no }), nil
}

func (r *employeeRepository) check(e employee.Employee) error {
	if _, ok := r.s.data.departments[e.DeptID]; !ok {
		return violation(database.ForeignKeyViolation, "employees_dept_id_fkey")
	}
	for _, other := range r.s.data.employees {
		if other.ID != e.ID && other.No == e.No {
			return violation(database.UniqueViolation, "employees_emp_no_key")
		}
	}
	return nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if err := r.s.fail("employee.Create"); err != nil {
		return employee.Employee{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = 0
	if err := r.check(e); err != nil {
		return employee.Employee{}, err
	}
	r.s.nextEmpID++
	e.ID = r.s.nextEmpID
	r.s.data.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if err := r.s.fail("employee.Update"); err != nil {
		return employee.Employee{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.employees[e.ID]; !ok {
		return employee.Employee{}, notFound("employee", e.ID)
	}
	if err := r.check(e); err != nil {
		return employee.Employee{}, err
	}
	r.s.data.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, company string, id int) (int64, error) {
	if err := r.s.fail("employee.Delete"); err != nil {
		return 0, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employeeInCompany(company, id); !ok {
		return 0, nil
	}
	for _, t := range r.s.data.timecards {
		if t.EmpID == id {
			return 0, violation(database.ForeignKeyViolation, "timecards_emp_id_fkey")
		}
	}
	delete(r.s.data.employees, id)
	return 1, nil
}

type timecardRepository struct {
	s *Store
}

func (r *timecardRepository) GetAllByEmployee(ctx context.Context, empID int) ([]timecard.Timecard, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.data.timecards, func(t timecard.Timecard) bool { return t.EmpID == empID }), nil
}

func (r *timecardRepository) inCompany(company string, id int) (timecard.Timecard, bool) {
	t, ok := r.s.data.timecards[id]
	if !ok {
		return timecard.Timecard{}, false
	}
	_, ok = r.s.employeeInCompany(company, t.EmpID)
	return t, ok
}

func (r *timecardRepository) GetByID(ctx context.Context, company string, id int) (timecard.Timecard, error) {
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.inCompany(company, id)
	if !ok {
		return timecard.Timecard{}, notFound("timecard", id)
	}
	return t, nil
}

func (r *timecardRepository) Create(ctx context.Context, t timecard.Timecard) (timecard.Timecard, error) {
	if err := r.s.fail("timecard.Create"); err != nil {
		return timecard.Timecard{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.employees[t.EmpID]; !ok {
		return timecard.Timecard{}, violation(database.ForeignKeyViolation, "timecards_emp_id_fkey")
	}
	r.s.nextTimecardID++
	t.ID = r.s.nextTimecardID
	r.s.data.timecards[t.ID] = t
	return t, nil
}

func (r *timecardRepository) Update(ctx context.Context, t timecard.Timecard) (timecard.Timecard, error) {
	if err := r.s.fail("timecard.Update"); err != nil {
		return timecard.Timecard{}, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.timecards[t.ID]; !ok {
		return timecard.Timecard{}, notFound("timecard", t.ID)
	}
	if _, ok := r.s.data.employees[t.EmpID]; !ok {
		return timecard.Timecard{}, violation(database.ForeignKeyViolation, "timecards_emp_id_fkey")
	}
	r.s.data.timecards[t.ID] = t
	return t, nil
}

func (r *timecardRepository) Delete(ctx context.Context, company string, id int) (int64, error) {
	if err := r.s.fail("timecard.Delete"); err != nil {
		return 0, err
	}
	defer r.s.guard(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.inCompany(company, id); !ok {
		return 0, nil
	}
	delete(r.s.data.timecards, id)
	return 1, nil
}
