package employee

import (
	"testing"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		Company:  "xl4998",
		Name:     "Ada",
		No:       "e1",
		HireDate: "2024-01-10",
		Job:      "Engineer",
		Salary:   decimal.RequireFromString("4500.25"),
		DeptID:   1,
	}

	t.Run("valid request passes", func(t *testing.T) {
		r := UpdateEmployeeRequest{ID: 3, CreateEmployeeRequest: valid}
		assert.NoError(t, r.Validate())
	})

	t.Run("id and embedded field errors are reported together", func(t *testing.T) {
		create := valid
		create.Name = ""
		create.MngID = -1
		r := UpdateEmployeeRequest{CreateEmployeeRequest: create}

		err := r.Validate()
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, []string{"emp_id", "emp_name", "mng_id"}, fields(errs))
	})
}

func fields(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}
