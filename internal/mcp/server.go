package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/user"
)

// HistoricalService defines the query operations needed by MCP.
type HistoricalService interface {
	LogsByDevice(ctx context.Context, deviceID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error)
	LogsByUser(ctx context.Context, userID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error)
	ActivitySummaryByDevice(ctx context.Context, deviceID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
	ActivitySummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
	AttentionSummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.AttentionSummaryResult, error)
}

// UserService defines the user operations needed by MCP.
type UserService interface {
	List(ctx context.Context, opts user.ListOptions) ([]user.User, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Historical HistoricalService
	Users      UserService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "attivita",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

const serverInstructions = `Attivita exposes read-only analytics over desktop activity logs.

Devices report foreground window samples (process name, window title, start and
stop timestamps). Tools let you list registered users, fetch raw activity logs
per device or per user, and compute classified activity summaries or attention
level summaries over a time window.

Timestamps accept RFC 3339 (2024-03-01T09:00:00Z) or bare dates (2024-03-01).
Bare dates expand to whole-day coverage in UTC.`
