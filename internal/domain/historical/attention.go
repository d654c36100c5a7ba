package historical

import (
	"log/slog"
	"sort"
	"strings"
	"time"
)

const (
	// maxAttentionLevel is the top of the 0-10 scoring scale.
	maxAttentionLevel = 10
	// defaultAttentionLevel is the neutral midpoint used when no rule matches.
	defaultAttentionLevel = 5
)

// AttentionScorer matches raw logs against a per-device score table and
// computes weighted productive time. Score tables are read-only snapshots,
// safe to share across requests.
type AttentionScorer struct {
	logger *slog.Logger
}

// NewAttentionScorer creates an attention scorer.
func NewAttentionScorer(logger *slog.Logger) *AttentionScorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttentionScorer{logger: logger}
}

// Score matches each log against its device's score rules. Both process and
// window title must match exactly (case-insensitive); when several rules
// match, the last one in table order wins. Unmatched logs get the neutral
// default level. Durations are the log's own span, bounded by its start
// when the stop time is absent; window clipping is the caller's concern.
func (s *AttentionScorer) Score(logs []ActivityLog, scoreTable map[string][]ProcessWindowLevel) []AttentionLevel {
	scored := make([]AttentionLevel, 0, len(logs))

	for _, log := range logs {
		level := defaultAttentionLevel
		for _, rule := range scoreTable[log.DeviceID] {
			if !strings.EqualFold(rule.Process, log.Process) {
				continue
			}
			if !strings.EqualFold(rule.WindowTitle, log.WindowTitle) {
				continue
			}
			level = rule.Level
		}

		stop := log.StartTime
		if log.StopTime != nil {
			stop = *log.StopTime
		}
		totalSeconds := stop.Sub(log.StartTime).Seconds()

		scored = append(scored, AttentionLevel{
			ActivityLog:            log,
			Level:                  level,
			TotalSeconds:           totalSeconds,
			TotalSecondsProductive: float64(level) * totalSeconds,
		})
	}

	return scored
}

// DailySummary buckets logs by the UTC calendar date of their start time
// and computes each day's productivity percentage, in ascending day order.
func (s *AttentionScorer) DailySummary(logs []ActivityLog, scoreTable map[string][]ProcessWindowLevel) []DailyAttentionSummary {
	byDay := make(map[string][]ActivityLog)
	for _, log := range logs {
		day := log.StartTime.UTC().Format(dayLayout)
		byDay[day] = append(byDay[day], log)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailyAttentionSummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, DailyAttentionSummary{
			Day:        day,
			Percentage: s.productivity(byDay[day], scoreTable),
		})
	}
	return summaries
}

// HourlySummary buckets logs by the UTC hour of their start time and
// computes each hour's productivity percentage, in ascending hour order.
func (s *AttentionScorer) HourlySummary(logs []ActivityLog, scoreTable map[string][]ProcessWindowLevel) []HourlyAttentionSummary {
	byHour := make(map[time.Time][]ActivityLog)
	for _, log := range logs {
		hour := log.StartTime.UTC().Truncate(time.Hour)
		byHour[hour] = append(byHour[hour], log)
	}

	hours := make([]time.Time, 0, len(byHour))
	for hour := range byHour {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })

	summaries := make([]HourlyAttentionSummary, 0, len(hours))
	for _, hour := range hours {
		summaries = append(summaries, HourlyAttentionSummary{
			Hour:       hour,
			Percentage: s.productivity(byHour[hour], scoreTable),
		})
	}
	return summaries
}

// productivity is the weighted percentage for one bucket:
// sum(productive) / (sum(seconds) * maxAttentionLevel) * 100.
func (s *AttentionScorer) productivity(logs []ActivityLog, scoreTable map[string][]ProcessWindowLevel) float64 {
	scored := s.Score(logs, scoreTable)

	var totalSeconds, productiveSeconds float64
	for _, entry := range scored {
		totalSeconds += entry.TotalSeconds
		productiveSeconds += entry.TotalSecondsProductive
	}
	if totalSeconds == 0 {
		return 0
	}
	return round2(productiveSeconds / (totalSeconds * maxAttentionLevel) * 100)
}
