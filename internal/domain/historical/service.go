package historical

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// defaultPageSize bounds each repository fetch during summary computation.
const defaultPageSize = 500

// Service orchestrates log fetching, classification, aggregation and
// attention scoring for the query API.
type Service struct {
	repo       LogRepository
	aggregator *Aggregator
	scorer     *AttentionScorer
	logger     *slog.Logger
	pageSize   int
}

// NewService creates a historical service. A nil aggregator or scorer gets
// the defaults.
func NewService(repo LogRepository, aggregator *Aggregator, scorer *AttentionScorer, logger *slog.Logger) *Service {
	if aggregator == nil {
		aggregator = NewAggregator(nil, logger)
	}
	if scorer == nil {
		scorer = NewAttentionScorer(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:       repo,
		aggregator: aggregator,
		scorer:     scorer,
		logger:     logger,
		pageSize:   defaultPageSize,
	}
}

// LogsByDevice lists a device's bounded logs, window-filtered only.
func (s *Service) LogsByDevice(ctx context.Context, deviceID string, opts ListLogsOptions) ([]ActivityLog, error) {
	return s.repo.ListByDevice(ctx, deviceID, normalizeOptions(opts))
}

// LogsByUser lists bounded logs across all of a user's devices.
func (s *Service) LogsByUser(ctx context.Context, userID string, opts ListLogsOptions) ([]ActivityLog, error) {
	return s.repo.ListByUser(ctx, userID, normalizeOptions(opts))
}

// ActivitySummaryByDevice fetches every log in the window for a device and
// produces the classified summary.
func (s *Service) ActivitySummaryByDevice(ctx context.Context, deviceID string, startTime, stopTime time.Time, groupBy []GroupBy) (SummaryResult, error) {
	start, stop, err := s.normalizeWindow(startTime, stopTime)
	if err != nil {
		return SummaryResult{}, err
	}

	logs, err := s.fetchAll(ctx, start, stop, func(ctx context.Context, opts ListLogsOptions) ([]ActivityLog, error) {
		return s.repo.ListByDevice(ctx, deviceID, opts)
	})
	if err != nil {
		return SummaryResult{}, fmt.Errorf("fetching device logs: %w", err)
	}

	return s.aggregator.ClassifyAndAggregate(deviceID, logs, start, stop, groupBy), nil
}

// ActivitySummaryByUser fetches every log in the window across the user's
// devices and produces the classified summary.
func (s *Service) ActivitySummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []GroupBy) (SummaryResult, error) {
	start, stop, err := s.normalizeWindow(startTime, stopTime)
	if err != nil {
		return SummaryResult{}, err
	}

	logs, err := s.fetchAll(ctx, start, stop, func(ctx context.Context, opts ListLogsOptions) ([]ActivityLog, error) {
		return s.repo.ListByUser(ctx, userID, opts)
	})
	if err != nil {
		return SummaryResult{}, fmt.Errorf("fetching user logs: %w", err)
	}

	return s.aggregator.ClassifyAndAggregate(userID, logs, start, stop, groupBy), nil
}

// AttentionSummaryByUser computes weighted productivity buckets for a user.
func (s *Service) AttentionSummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []GroupBy) (AttentionSummaryResult, error) {
	start, stop, err := s.normalizeWindow(startTime, stopTime)
	if err != nil {
		return AttentionSummaryResult{}, err
	}

	logs, err := s.fetchAll(ctx, start, stop, func(ctx context.Context, opts ListLogsOptions) ([]ActivityLog, error) {
		return s.repo.ListByUser(ctx, userID, opts)
	})
	if err != nil {
		return AttentionSummaryResult{}, fmt.Errorf("fetching user logs: %w", err)
	}

	scoreTable, err := s.repo.ScoreTableByUser(ctx, userID)
	if err != nil {
		return AttentionSummaryResult{}, fmt.Errorf("fetching score table: %w", err)
	}

	result := AttentionSummaryResult{
		StartTime: start,
		StopTime:  stop,
		GroupBy:   groupBy,
	}
	if containsGroupBy(groupBy, GroupByDay) {
		result.Days = s.scorer.DailySummary(logs, scoreTable)
	}
	if containsGroupBy(groupBy, GroupByHour) {
		result.Hours = s.scorer.HourlySummary(logs, scoreTable)
	}
	return result, nil
}

func (s *Service) normalizeWindow(startTime, stopTime time.Time) (time.Time, time.Time, error) {
	start := NormalizeStart(startTime)
	stop := NormalizeStop(stopTime)
	if !stop.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return start, stop, nil
}

type fetchPage func(ctx context.Context, opts ListLogsOptions) ([]ActivityLog, error)

// fetchAll pages through the repository until a short or empty page signals
// exhaustion.
func (s *Service) fetchAll(ctx context.Context, start, stop time.Time, fetch fetchPage) ([]ActivityLog, error) {
	var logs []ActivityLog
	skip := 0

	for {
		batch, err := fetch(ctx, ListLogsOptions{
			Skip:      skip,
			Limit:     s.pageSize,
			StartTime: &start,
			StopTime:  &stop,
		})
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		logs = append(logs, batch...)

		if len(batch) < s.pageSize {
			break
		}
		skip += s.pageSize
	}

	return logs, nil
}

func normalizeOptions(opts ListLogsOptions) ListLogsOptions {
	if opts.StartTime != nil {
		start := NormalizeStart(*opts.StartTime)
		opts.StartTime = &start
	}
	if opts.StopTime != nil {
		stop := NormalizeStop(*opts.StopTime)
		opts.StopTime = &stop
	}
	return opts
}
