package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jsgrayson/scheduler/internal/config"
	"github.com/jsgrayson/scheduler/internal/handler/http/middleware"
	"github.com/jsgrayson/scheduler/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	templateHandler TemplateHandler,
	rotationHandler RotationHandler,
	recommendationHandler RecommendationHandler,
	availabilityHandler AvailabilityHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "scheduler"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Post("/deactivate", employeeHandler.Deactivate)
					r.Post("/called", employeeHandler.MarkCalled)
				})
			})

			r.Get("/roles", employeeHandler.ListRoles)

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListRange)
				r.Post("/", shiftHandler.Create)
				r.Get("/agenda/{employeeID}", shiftHandler.Agenda)
				r.Post("/bulk-update", shiftHandler.BulkUpdate)
				r.Post("/bulk-delete", shiftHandler.BulkDelete)
				r.Post("/validate", shiftHandler.ValidateSchedule)

				r.Route("/{shiftID}", func(r chi.Router) {
					r.Get("/", shiftHandler.GetByID)
					r.Put("/", shiftHandler.Update)
					r.Delete("/", shiftHandler.Delete)
					r.Get("/call-sheet", shiftHandler.CallSheet)
				})
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templateHandler.List)
				r.Put("/", templateHandler.Save)
				r.Post("/project", templateHandler.Project)
				r.Post("/import-locked", templateHandler.ImportFromLocked)
				r.Delete("/{templateID}", templateHandler.Delete)
			})

			r.Route("/availability", func(r chi.Router) {
				r.Get("/", availabilityHandler.List)
				r.Post("/", availabilityHandler.Create)
				r.Delete("/{windowID}", availabilityHandler.Delete)
			})

			r.Post("/rotations", rotationHandler.MarkCalled)

			r.Get("/recommendations", recommendationHandler.Recommend)
		})
	})
	return r
}
