package http

import (
	"log/slog"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// Metrics is optional; nil disables instrumentation and /metrics.
	Metrics *metrics.HTTPMetrics
}

func NewRouter(
	opts RouterOptions,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	timecardHandler TimecardHandler,
	companyHandler CompanyHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.RequestID)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.Metrics != nil {
		r.Method("GET", "/metrics", opts.Metrics.Handler())
	}

	r.Route("/CompanyServices", func(r chi.Router) {
		// Form and JSON bodies carry their own company field.
		r.Post("/department", departmentHandler.CreateDepartment)
		r.Put("/department", departmentHandler.UpdateDepartment)
		r.Post("/employee", employeeHandler.CreateEmployee)
		r.Put("/employee", employeeHandler.UpdateEmployee)
		r.Post("/timecard", timecardHandler.CreateTimecard)
		r.Put("/timecard", timecardHandler.UpdateTimecard)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCompany)

			r.Get("/departments", departmentHandler.ListDepartments)
			r.Get("/department", departmentHandler.GetDepartment)
			r.Delete("/department", departmentHandler.DeleteDepartment)

			r.Get("/employees", employeeHandler.ListEmployees)
			r.Get("/employee", employeeHandler.GetEmployee)
			r.Delete("/employee", employeeHandler.DeleteEmployee)

			r.Get("/timecards", timecardHandler.ListTimecards)
			r.Get("/timecard", timecardHandler.GetTimecard)
			r.Delete("/timecard", timecardHandler.DeleteTimecard)

			r.Delete("/company", companyHandler.Delete)
		})
	})

	return r
}
