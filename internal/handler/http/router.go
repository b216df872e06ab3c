package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paydesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Get("/{id}", companyHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", companyHandler.Create)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})
			})

			r.Route("/persons", func(r chi.Router) {
				r.Get("/", employeeHandler.ListByCompany)
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/reports", employeeHandler.DirectReports)
				r.Patch("/{id}/salary", employeeHandler.UpdateSalary)

				// Hierarchy and record mutations are admin operations;
				// salary changes go through the authorization gate instead.
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Put("/{id}/manager", employeeHandler.AssignManager)
					r.Delete("/{id}/manager", employeeHandler.RemoveManager)
					r.Patch("/{id}/admin", employeeHandler.GrantAdmin)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/{employeeId}/paychecks", func(r chi.Router) {
					r.Post("/", payrollHandler.ComputePaycheck)
					r.Get("/", payrollHandler.ListPaychecks)
				})
			})

			r.Route("/paychecks", func(r chi.Router) {
				r.Get("/{id}", payrollHandler.GetPaycheck)
				r.Patch("/{id}", payrollHandler.UpdatePaycheck)
				r.Patch("/{id}/status", payrollHandler.TransitionPaycheck)
				r.Post("/{id}/void", payrollHandler.VoidPaycheck)
				r.Delete("/{id}", payrollHandler.DeletePaycheck)
			})

			r.Get("/tax-strategies", payrollHandler.ListStrategies)
		})
	})
	return r
}
