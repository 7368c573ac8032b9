package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Employee  EmployeeHandler
	Payroll   PayrollHandler
	Leave     LeaveHandler
	Claim     ClaimHandler
	Dashboard DashboardHandler
}

func NewRouter(cfg config.HTTPConfig, logger *slog.Logger, h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.ActorHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(m.Middleware)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Actor)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Patch("/salary", h.Employee.UpdateBaseSalary)
				r.Patch("/status", h.Employee.UpdateStatus)
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/statutory/preview", h.Payroll.PreviewStatutory)
			r.Route("/periods", func(r chi.Router) {
				r.Get("/", h.Payroll.ListPeriods)
				r.Post("/", h.Payroll.CreatePeriod)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Payroll.GetPeriod)
					r.Get("/entries", h.Payroll.ListEntries)
					r.With(middleware.RequireActor).Post("/process", h.Payroll.ProcessPeriod)
				})
			})
		})

		r.Route("/leave", func(r chi.Router) {
			r.Route("/balances", func(r chi.Router) {
				r.Get("/", h.Leave.GetBalances)
				r.Post("/", h.Leave.CreateBalance)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.Leave.ListRequests)
				r.Post("/", h.Leave.CreateRequest)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.GetRequest)
					r.Delete("/", h.Leave.DeleteRequest)

					// Decisions need an identified approver
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireActor)
						r.Post("/approve", h.Leave.ApproveRequest)
						r.Post("/reject", h.Leave.RejectRequest)
					})
				})
			})
		})

		r.Route("/claims", func(r chi.Router) {
			r.Get("/", h.Claim.ListClaims)
			r.Post("/", h.Claim.CreateClaim)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Claim.GetClaim)
				r.Post("/submit", h.Claim.SubmitClaim)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireActor)
					r.Post("/approve", h.Claim.ApproveClaim)
					r.Post("/reject", h.Claim.RejectClaim)
					r.Post("/pay", h.Claim.PayClaim)
				})
			})
		})

		r.Get("/dashboard", h.Dashboard.GetDashboard)
	})
	return r
}
