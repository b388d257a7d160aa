package company

// DeleteSummary counts the rows removed by a company wide delete.
type DeleteSummary struct {
	Departments int64
	Employees   int64
	Timecards   int64
}

func (s DeleteSummary) Total() int64 {
	return s.Departments + s.Employees + s.Timecards
}
