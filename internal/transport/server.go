package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/user"
	"github.com/tc2services/attivita/internal/observability"
)

// HistoricalService defines the query operations exposed over HTTP.
type HistoricalService interface {
	LogsByDevice(ctx context.Context, deviceID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error)
	LogsByUser(ctx context.Context, userID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error)
	ActivitySummaryByDevice(ctx context.Context, deviceID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
	ActivitySummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
	AttentionSummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.AttentionSummaryResult, error)
}

// UserService defines the user operations exposed over HTTP.
type UserService interface {
	Get(ctx context.Context, userID string) (*user.User, error)
	List(ctx context.Context, opts user.ListOptions) ([]user.User, error)
	Create(ctx context.Context, fullname string) (*user.User, error)
	Delete(ctx context.Context, userID string) error
	AssignDevice(ctx context.Context, userID, deviceID string) error
}

// InsightService defines the insight operations exposed over HTTP.
type InsightService interface {
	ProductivityForDevice(ctx context.Context, deviceID string) (string, error)
	ProductivityForUser(ctx context.Context, userID string) (string, error)
}

// Services bundles everything the HTTP layer needs.
type Services struct {
	Historical HistoricalService
	Users      UserService
	Insights   InsightService
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewRouter creates the REST router. mcpHandler, when non-nil, is mounted
// under /mcp.
func NewRouter(services Services, logger *slog.Logger, mcpHandler http.Handler) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.Metrics)

	srv := &Server{services: services, logger: logger}

	r.Route("/api", func(r chi.Router) {
		r.Route("/historical", func(r chi.Router) {
			r.Get("/device/{deviceID}/activities-logs", srv.handleLogsByDevice)
			r.Get("/user/{userID}/activities-logs", srv.handleLogsByUser)
			r.Get("/device/{deviceID}/activity-summary", srv.handleSummaryByDevice)
			r.Get("/user/{userID}/activity-summary", srv.handleSummaryByUser)
			r.Get("/user/{userID}/attention-level-summary", srv.handleAttentionByUser)
		})
		r.Route("/user", func(r chi.Router) {
			r.Get("/", srv.handleListUsers)
			r.Post("/", srv.handleCreateUser)
			r.Get("/{userID}", srv.handleGetUser)
			r.Delete("/{userID}", srv.handleDeleteUser)
			r.Post("/{userID}/device", srv.handleAssignDevice)
		})
		r.Route("/insight", func(r chi.Router) {
			r.Get("/productivity/device/{deviceID}", srv.handleInsightByDevice)
			r.Get("/productivity/user/{userID}", srv.handleInsightByUser)
		})
	})

	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if mcpHandler != nil {
		r.Mount("/mcp", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
