package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffly/hrms-backend-go/internal/config"
	"github.com/staffly/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffly/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Task       TaskHandler
	Leave      LeaveHandler
	Report     ReportHandler
	Attendance AttendanceHandler
	Client     ClientHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffly-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin board: week and day views, assignments, submit lock
			r.Route("/schedules", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Schedule.Assign)
				r.Get("/week", h.Schedule.GetWeek)
				r.Delete("/week", h.Schedule.ResetWeek)
				r.Post("/week/submit", h.Schedule.SubmitWeek)
				r.Get("/day", h.Schedule.GetDay)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Task.ListForSlot)
					r.Post("/", h.Task.Create)
					r.Delete("/{id}", h.Task.Delete)
				})
				// Employees may mark their own tasks done
				r.Put("/{id}", h.Task.Update)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/{id}", h.Leave.GetRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Leave.DecideRequest)
					r.Delete("/{id}", h.Leave.DeleteRequest)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.GetByID)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Delete("/{id}", h.Client.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/reports", h.Report.Monthly)
			})

			// Employee self-service
			r.Route("/my", func(r chi.Router) {
				r.Get("/schedules/week", h.Schedule.GetMyWeek)
				r.Get("/tasks/day", h.Task.GetMyDay)
				r.Get("/leaves", h.Leave.GetMyBalances)
				r.Get("/clients", h.Client.GetMyClients)
				r.Route("/attendances", func(r chi.Router) {
					r.Get("/", h.Attendance.GetMyMonth)
					r.Post("/sign-in", h.Attendance.SignIn)
					r.Post("/sign-off", h.Attendance.SignOff)
				})
			})
		})
	})
	return r
}
