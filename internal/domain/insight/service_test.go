package insight_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/insight"
)

type stubSummaries struct {
	lastID      string
	lastGroupBy []historical.GroupBy
	lastStart   time.Time
	lastStop    time.Time
	result      historical.SummaryResult
	err         error
}

func (s *stubSummaries) ActivitySummaryByDevice(_ context.Context, deviceID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error) {
	s.lastID, s.lastStart, s.lastStop, s.lastGroupBy = deviceID, startTime, stopTime, groupBy
	return s.result, s.err
}

func (s *stubSummaries) ActivitySummaryByUser(_ context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error) {
	s.lastID, s.lastStart, s.lastStop, s.lastGroupBy = userID, startTime, stopTime, groupBy
	return s.result, s.err
}

type stubAgent struct {
	prompt string
	answer string
	err    error
}

func (a *stubAgent) Run(_ context.Context, prompt string) (string, error) {
	a.prompt = prompt
	return a.answer, a.err
}

func TestInsightService_ProductivityForDevice(t *testing.T) {
	ctx := context.Background()

	summaries := &stubSummaries{
		result: historical.SummaryResult{TotalSeconds: 3600},
	}
	agent := &stubAgent{answer: "Mostly coding."}

	svc := insight.NewService(summaries, agent, nil)
	answer, err := svc.ProductivityForDevice(ctx, "dev1")
	require.NoError(t, err)
	require.Equal(t, "Mostly coding.", answer)

	require.Equal(t, "dev1", summaries.lastID)
	require.Equal(t, []historical.GroupBy{historical.GroupByDay}, summaries.lastGroupBy)
	// Lookback covers the last three days.
	require.InDelta(t, 72*time.Hour, summaries.lastStop.Sub(summaries.lastStart), float64(time.Minute))

	require.Contains(t, agent.prompt, `device "dev1"`)
	require.Contains(t, agent.prompt, `"total_seconds":3600`)
}

func TestInsightService_ProductivityForUser(t *testing.T) {
	ctx := context.Background()

	summaries := &stubSummaries{}
	agent := &stubAgent{answer: "Balanced week."}

	svc := insight.NewService(summaries, agent, nil)
	answer, err := svc.ProductivityForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Balanced week.", answer)
	require.Equal(t, "u1", summaries.lastID)
	require.Contains(t, agent.prompt, `user "u1"`)
}

func TestInsightService_SummaryErrorPropagates(t *testing.T) {
	ctx := context.Background()

	summaries := &stubSummaries{err: errors.New("db down")}
	svc := insight.NewService(summaries, &stubAgent{}, nil)

	_, err := svc.ProductivityForDevice(ctx, "dev1")
	require.ErrorContains(t, err, "db down")
}

func TestInsightService_AgentErrorPropagates(t *testing.T) {
	ctx := context.Background()

	svc := insight.NewService(&stubSummaries{}, &stubAgent{err: errors.New("timeout")}, nil)

	_, err := svc.ProductivityForUser(ctx, "u1")
	require.ErrorContains(t, err, "timeout")
}
