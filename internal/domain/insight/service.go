package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tc2services/attivita/internal/domain/historical"
)

// defaultLookbackDays is the window insights are computed over.
const defaultLookbackDays = 3

// Service turns aggregated activity summaries into natural-language
// productivity insights via a language-model agent. It contributes no
// analytics of its own: all numbers come from the historical service.
type Service struct {
	summaries SummarySource
	agent     Agent
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates an insight service.
func NewService(summaries SummarySource, agent Agent, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		summaries: summaries,
		agent:     agent,
		logger:    logger,
		now:       time.Now,
	}
}

// ProductivityForDevice generates an insight over the device's last few days
// of activity.
func (s *Service) ProductivityForDevice(ctx context.Context, deviceID string) (string, error) {
	stop := s.now().UTC()
	start := stop.AddDate(0, 0, -defaultLookbackDays)

	summary, err := s.summaries.ActivitySummaryByDevice(ctx, deviceID, start, stop, []historical.GroupBy{historical.GroupByDay})
	if err != nil {
		return "", fmt.Errorf("building device summary: %w", err)
	}
	return s.generate(ctx, "device", deviceID, summary)
}

// ProductivityForUser generates an insight over the user's last few days of
// activity across all devices.
func (s *Service) ProductivityForUser(ctx context.Context, userID string) (string, error) {
	stop := s.now().UTC()
	start := stop.AddDate(0, 0, -defaultLookbackDays)

	summary, err := s.summaries.ActivitySummaryByUser(ctx, userID, start, stop, []historical.GroupBy{historical.GroupByDay})
	if err != nil {
		return "", fmt.Errorf("building user summary: %w", err)
	}
	return s.generate(ctx, "user", userID, summary)
}

func (s *Service) generate(ctx context.Context, kind, id string, summary historical.SummaryResult) (string, error) {
	prompt, err := buildPrompt(kind, id, summary)
	if err != nil {
		return "", err
	}

	answer, err := s.agent.Run(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("running insight agent: %w", err)
	}
	return answer, nil
}

func buildPrompt(kind, id string, summary historical.SummaryResult) (string, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}

	return fmt.Sprintf(`You are an assistant analyzing device usage analytics.

Below is the aggregated activity summary for %s %q between %s and %s,
grouped by day. Durations are in seconds and percentages are relative to
each scope's total.

%s

Answer with a short paragraph describing how the time was spent and how
productive the period looks. Do not invent numbers that are not in the data.`,
		kind, id,
		summary.StartTime.Format(time.RFC3339),
		summary.StopTime.Format(time.RFC3339),
		string(data),
	), nil
}
