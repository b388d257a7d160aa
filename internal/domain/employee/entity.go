package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoManager is the mng_id of an employee that reports to nobody.
const NoManager = 0

type Employee struct {
	ID       int
	Name     string
	No       string
	HireDate time.Time
	Job      string
	Salary   decimal.Decimal
	DeptID   int
	MngID    int
}

func EmpNo(e Employee) string { return e.No }
func EmpID(e Employee) int    { return e.ID }
