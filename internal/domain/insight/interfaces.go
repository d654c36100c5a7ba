package insight

import (
	"context"
	"time"

	"github.com/tc2services/attivita/internal/domain/historical"
)

// Agent runs a natural-language prompt against a language model and returns
// its text answer.
type Agent interface {
	Run(ctx context.Context, prompt string) (string, error)
}

// SummarySource provides the aggregated activity data insights are built
// from.
type SummarySource interface {
	ActivitySummaryByDevice(ctx context.Context, deviceID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
	ActivitySummaryByUser(ctx context.Context, userID string, startTime, stopTime time.Time, groupBy []historical.GroupBy) (historical.SummaryResult, error)
}
