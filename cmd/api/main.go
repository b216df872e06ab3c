package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/config"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/domain/hierarchy"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/tax"
	appHTTP "github.com/paydesk/payroll-backend-go/internal/handler/http"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/paydesk/payroll-backend-go/internal/service/auth"
	serviceCompany "github.com/paydesk/payroll-backend-go/internal/service/company"
	employeeService "github.com/paydesk/payroll-backend-go/internal/service/employee"
	payrollService "github.com/paydesk/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	personRepo := postgresql.NewPersonRepository(db)
	paycheckRepo := postgresql.NewPaycheckRepository(db)

	registry := tax.NewRegistry()
	for _, sc := range cfg.TaxStrategies {
		strategy, err := tax.NewFlatRate(sc.Name, sc.Rate)
		if err != nil {
			log.Fatalf("Invalid tax strategy %q: %v", sc.Name, err)
		}
		if err := registry.Register(sc.Name, strategy); err != nil {
			log.Fatalf("Failed to register tax strategy %q: %v", sc.Name, err)
		}
	}

	graph := hierarchy.NewGraph()
	if err := employeeService.HydrateGraph(context.Background(), personRepo, graph); err != nil {
		log.Fatal("Failed to hydrate hierarchy graph:", err)
	}

	gate := authz.NewGate(graph)
	calculator := payroll.NewCalculator(registry)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	companyService := serviceCompany.NewCompanyService(companyRepo)
	personService := employeeService.NewPersonService(db, personRepo, graph, gate)
	payrollSvc := payrollService.NewPayrollService(paycheckRepo, calculator, registry, gate)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	employeeHandler := appHTTP.NewEmployeeHandler(personService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		employeeHandler,
		payrollHandler,
		cfg.App.Env,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
