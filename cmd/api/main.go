package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/config"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	appHTTP "github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/repository/postgresql"
	companyService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/company"
	departmentService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/employee"
	timecardService "github.com/cmlabs-hris/timekeeping-backend-go/internal/service/timecard"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type repositories struct {
	departments department.DepartmentRepository
	employees   employee.EmployeeRepository
	timecards   timecard.TimecardRepository
	transactor  company.Transactor
	close       func()
}

func openRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.App.Storage == "memory" {
		slog.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			departments: store.Departments(),
			employees:   store.Employees(),
			timecards:   store.Timecards(),
			transactor:  store.Transactor(),
			close:       func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if cfg.Migration.RunOnStartup {
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("error running migrations: %w", err)
		}
		slog.Info("database migrations applied")
	}

	return &repositories{
		departments: postgresql.NewDepartmentRepository(db),
		employees:   postgresql.NewEmployeeRepository(db),
		timecards:   postgresql.NewTimecardRepository(db),
		transactor:  postgresql.NewTransactor(db),
		close:       db.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeping"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	repos, err := openRepositories(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	systemClock := clock.New()
	dateChecker := validator.NewDateTimeChecker(cfg.Formats.Date, cfg.Formats.Location, systemClock)
	timestampChecker := validator.NewDateTimeChecker(cfg.Formats.Timestamp, cfg.Formats.Location, systemClock)
	tenant := cfg.Company.Name

	departmentSvc := departmentService.NewDepartmentService(tenant, repos.departments)
	employeeSvc := employeeService.NewEmployeeService(tenant, dateChecker, repos.departments, repos.employees)
	timecardSvc := timecardService.NewTimecardService(tenant, timestampChecker, repos.employees, repos.timecards)
	companySvc := companyService.NewCompanyService(tenant, repos.transactor, repos.departments, repos.employees, repos.timecards)

	var httpMetrics *metrics.HTTPMetrics
	if cfg.App.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       level,
			AllowedOrigins: cfg.App.AllowedOrigins,
			Metrics:        httpMetrics,
		},
		appHTTP.NewDepartmentHandler(departmentSvc),
		appHTTP.NewEmployeeHandler(employeeSvc, dateChecker.Layout()),
		appHTTP.NewTimecardHandler(timecardSvc, timestampChecker),
		appHTTP.NewCompanyHandler(companySvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "company", tenant)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
