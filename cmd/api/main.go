package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jsgrayson/scheduler/internal/config"
	appHTTP "github.com/jsgrayson/scheduler/internal/handler/http"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
	"github.com/jsgrayson/scheduler/internal/pkg/jwt"
	"github.com/jsgrayson/scheduler/internal/repository/postgresql"
	authService "github.com/jsgrayson/scheduler/internal/service/auth"
	availabilityService "github.com/jsgrayson/scheduler/internal/service/availability"
	callsheetService "github.com/jsgrayson/scheduler/internal/service/callsheet"
	employeeService "github.com/jsgrayson/scheduler/internal/service/employee"
	"github.com/jsgrayson/scheduler/internal/service/hours"
	recommendationService "github.com/jsgrayson/scheduler/internal/service/recommendation"
	rotationService "github.com/jsgrayson/scheduler/internal/service/rotation"
	shiftService "github.com/jsgrayson/scheduler/internal/service/shift"
	templateService "github.com/jsgrayson/scheduler/internal/service/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	rotationRepo := postgresql.NewRotationRepository(db)
	availabilityRepo := postgresql.NewAvailabilityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := hours.NewCalculator()
	weekStart := cfg.Schedule.WeekStart

	authSvc := authService.NewAuthService(cfg.Auth.SupervisorPasswordHash, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, roleRepo)
	shiftSvc := shiftService.NewShiftService(txManager, shiftRepo, employeeRepo, roleRepo, calculator, weekStart)
	templateSvc := templateService.NewTemplateService(txManager, templateRepo, shiftRepo, employeeRepo, roleRepo, weekStart)
	rotationSvc := rotationService.NewRotationService(rotationRepo)
	callSheetSvc := callsheetService.NewCallSheetService(shiftRepo, employeeRepo, roleRepo, rotationSvc, calculator, weekStart)
	recommendationSvc := recommendationService.NewRecommendationService(shiftRepo, employeeRepo, roleRepo, availabilityRepo, calculator, weekStart)
	availabilitySvc := availabilityService.NewAvailabilityService(availabilityRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, roleRepo)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc, callSheetSvc)
	templateHandler := appHTTP.NewTemplateHandler(templateSvc)
	rotationHandler := appHTTP.NewRotationHandler(rotationSvc)
	recommendationHandler := appHTTP.NewRecommendationHandler(recommendationSvc)
	availabilityHandler := appHTTP.NewAvailabilityHandler(availabilitySvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		shiftHandler,
		templateHandler,
		rotationHandler,
		recommendationHandler,
		availabilityHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
