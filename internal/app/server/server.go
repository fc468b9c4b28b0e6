package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"hrms/internal/db"
	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/dashboard"
	"hrms/internal/domain/directory"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/platform/config"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	authhandler "hrms/internal/transport/http/handlers/auth"
	dashboardhandler "hrms/internal/transport/http/handlers/dashboard"
	employeeshandler "hrms/internal/transport/http/handlers/employees"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	metahandler "hrms/internal/transport/http/handlers/meta"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	"hrms/internal/transport/http/middleware"
)

const version = "1.0.0"

func Run() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	tokens := auth.NewTokenService(
		cfg.JWTSecret,
		cfg.JWTRefreshSecret,
		time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenTTLDays)*24*time.Hour,
	)
	authStore := auth.NewStore(pool)
	authService := auth.NewService(authStore, tokens)

	directoryStore := directory.NewStore(pool)
	employeeStore := employee.NewStore(pool, cfg.DefaultEmployeePassword)
	attendanceService := attendance.NewService(attendance.NewStore(pool), employeeStore, cfg.RosterEmployeeCap)
	leaveStore := leave.NewStore(pool)
	payrollStore := payroll.NewStore(pool)
	dashboardStore := dashboard.NewStore(pool)

	employeesHandler := employeeshandler.NewHandler(employeeStore, directoryStore)
	metaHandler := metahandler.NewHandler(pool, employeesHandler, version)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(!cfg.Debug))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Auth(tokens))

	router.Get("/", metaHandler.HandleRoot)
	router.Get("/health", metaHandler.HandleHealth)

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			employeesHandler.RegisterRoutes(r)
			metaHandler.RegisterRoutes(r)
			attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
			dashboardhandler.NewHandler(dashboardStore).RegisterRoutes(r)
			leavehandler.NewHandler(leaveStore).RegisterRoutes(r)
			payrollhandler.NewHandler(payrollStore).RegisterRoutes(r)
		})
	})

	log.Printf("HRMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
