package department

type Department struct {
	ID       int
	Company  string
	Name     string
	No       string
	Location string
}

func DeptNo(d Department) string { return d.No }
func DeptID(d Department) int    { return d.ID }
