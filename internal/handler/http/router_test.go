package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/repository/memory"
	companyService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/company"
	departmentService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/employee"
	timecardService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/timecard"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompany = "xl4998"

// Friday 12 January 2024, 15:30:45 UTC.
var fixedNow = time.Date(2024, time.January, 12, 15, 30, 45, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	store := memory.NewStore()
	c := clock.NewFakeClock(fixedNow)
	dates := validator.NewDateTimeChecker(validator.DateLayout, time.UTC, c)
	stamps := validator.NewDateTimeChecker(validator.TimestampLayout, time.UTC, c)

	return NewRouter(
		RouterOptions{
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			Metrics: metrics.NewHTTPMetrics(nil),
		},
		NewDepartmentHandler(departmentService.NewDepartmentService(testCompany, store.Departments())),
		NewEmployeeHandler(employeeService.NewEmployeeService(testCompany, dates, store.Departments(), store.Employees()), dates.Layout()),
		NewTimecardHandler(timecardService.NewTimecardService(testCompany, stamps, store.Employees(), store.Timecards()), stamps),
		NewCompanyHandler(companyService.NewCompanyService(testCompany, store.Transactor(), store.Departments(), store.Employees(), store.Timecards())),
	)
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	return do(t, h, http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func putJSON(t *testing.T, h http.Handler, target, body string) (*httptest.ResponseRecorder, envelope) {
	return do(t, h, http.MethodPut, target, strings.NewReader(body), "application/json")
}

func dataField(t *testing.T, env envelope, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return string(m[field])
}

func TestRouter_DepartmentLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodGet, "/CompanyServices/departments?company="+testCompany, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EMPTY_RESULT", env.Error.Code)

	rec, env = postForm(t, h, "/CompanyServices/department", url.Values{
		"company":   {testCompany},
		"dept_name": {"Engineering"},
		"dept_no":   {"d10"},
		"location":  {"Rochester"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "1", dataField(t, env, "dept_id"))
	assert.Equal(t, `"d10"`, dataField(t, env, "dept_no"))

	rec, env = postForm(t, h, "/CompanyServices/department", url.Values{
		"company": {testCompany}, "dept_name": {"Dup"}, "dept_no": {"d10"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	rec, _ = putJSON(t, h, "/CompanyServices/department",
		`{"company":"xl4998","dept_id":1,"dept_name":"Platform","dept_no":"d10","location":"Buffalo"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/CompanyServices/department?company=xl4998&dept_id=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"Platform"`, dataField(t, env, "dept_name"))

	rec, env = do(t, h, http.MethodDelete, "/CompanyServices/department?company=xl4998&dept_id=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", dataField(t, env, "deleted"))

	rec, env = do(t, h, http.MethodGet, "/CompanyServices/department?company=xl4998&dept_id=1", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRouter_RejectsMalformedInput(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		ctype      string
		wantStatus int
		wantCode   string
	}{
		{"missing company", http.MethodGet, "/CompanyServices/departments", "", "", http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"non numeric id", http.MethodGet, "/CompanyServices/department?company=xl4998&dept_id=abc", "", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"broken json", http.MethodPut, "/CompanyServices/department", `{"dept_id":`, "application/json", http.StatusBadRequest, "BAD_REQUEST"},
		{"missing fields", http.MethodPost, "/CompanyServices/department", "company=xl4998", "application/x-www-form-urlencoded", http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown company", http.MethodGet, "/CompanyServices/departments?company=acme", "", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"non numeric salary", http.MethodPost, "/CompanyServices/employee", "company=xl4998&salary=lots&dept_id=1", "application/x-www-form-urlencoded", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rec, env := do(t, h, tt.method, tt.target, body, tt.ctype)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestRouter_EmployeeTimecardAndCompanyDelete(t *testing.T) {
	h := newTestRouter(t)

	rec, _ := postForm(t, h, "/CompanyServices/department", url.Values{
		"company": {testCompany}, "dept_name": {"Ops"}, "dept_no": {"d1"}, "location": {"NYC"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	employeeForm := url.Values{
		"company":   {testCompany},
		"emp_name":  {"Ada"},
		"emp_no":    {"e1"},
		"hire_date": {"2024-01-13"},
		"job":       {"Engineer"},
		"salary":    {"4500"},
		"dept_id":   {"1"},
		"mng_id":    {"7"},
	}

	// Saturday
	rec, env := postForm(t, h, "/CompanyServices/employee", employeeForm)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Message, "weekend")

	employeeForm.Set("hire_date", "2024-01-10")
	rec, env = postForm(t, h, "/CompanyServices/employee", employeeForm)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "4500.00", dataField(t, env, "salary"))
	assert.Equal(t, `"2024-01-10"`, dataField(t, env, "hire_date"))
	assert.Equal(t, "0", dataField(t, env, "mng_id"))

	rec, env = putJSON(t, h, "/CompanyServices/employee",
		`{"emp_id":1,"company":"xl4998","emp_name":"Ada L","emp_no":"e1","hire_date":"2024-01-10","job":"Lead","salary":5000.5,"dept_id":1,"mng_id":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5000.50", dataField(t, env, "salary"))

	rec, env = postForm(t, h, "/CompanyServices/timecard", url.Values{
		"company": {testCompany}, "emp_id": {"1"}, "start_time": {"2024-01-10 09:00:00"}, "end_time": {"2024-01-10 09:30:00"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = postForm(t, h, "/CompanyServices/timecard", url.Values{
		"company": {testCompany}, "emp_id": {"1"}, "start_time": {"2024-01-10 09:00:00"}, "end_time": {"2024-01-10 10:00:00"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `"2024-01-10 09:00:00"`, dataField(t, env, "start_time"))

	rec, _ = putJSON(t, h, "/CompanyServices/timecard",
		`{"timecard_id":1,"company":"xl4998","emp_id":1,"start_time":"2024-01-11 08:00:00","end_time":"2024-01-11 16:00:00"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/CompanyServices/timecards?company=xl4998&emp_id=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "2024-01-11 16:00:00", cards[0]["end_time"])

	rec, env = do(t, h, http.MethodDelete, "/CompanyServices/employee?company=xl4998&emp_id=1", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "employee with timecards is in use")

	rec, env = do(t, h, http.MethodDelete, "/CompanyServices/company?company=xl4998", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "xl4998's information deleted", env.Message)
	assert.Equal(t, "1", dataField(t, env, "departments_deleted"))
	assert.Equal(t, "1", dataField(t, env, "employees_deleted"))
	assert.Equal(t, "1", dataField(t, env, "timecards_deleted"))

	rec, _ = do(t, h, http.MethodGet, "/CompanyServices/employees?company=xl4998", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_HeartbeatRequestIDAndMetrics(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/CompanyServices/departments?company=xl4998", nil, "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `timekeeping_http_requests_total{method="GET",route="/CompanyServices/departments",status="404"} 1`)
}
