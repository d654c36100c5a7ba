package historical

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
)

// Aggregator folds classified activities into nested category, component and
// day summaries. It is stateless apart from its read-only classifier.
type Aggregator struct {
	classifier *Classifier
	logger     *slog.Logger
}

// NewAggregator creates an aggregator. A nil classifier gets the default
// rule set.
func NewAggregator(classifier *Classifier, logger *slog.Logger) *Aggregator {
	if classifier == nil {
		classifier = NewClassifier(DefaultRuleSet())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{classifier: classifier, logger: logger}
}

// ClassifyAndAggregate clips and classifies the logs, then computes the
// global rollup and, when day grouping is requested, an independent rollup
// per UTC calendar day.
func (a *Aggregator) ClassifyAndAggregate(deviceID string, logs []ActivityLog, startTime, stopTime time.Time, groupBy []GroupBy) SummaryResult {
	classified := a.classifier.ClassifyLogs(deviceID, logs, startTime, stopTime)

	totalSeconds, categories := a.aggregate(classified)

	var days []DailySummary
	if containsGroupBy(groupBy, GroupByDay) {
		days = a.aggregateByDay(classified)
	}

	return SummaryResult{
		StartTime:    startTime,
		StopTime:     stopTime,
		GroupBy:      groupBy,
		TotalSeconds: totalSeconds,
		Categories:   categories,
		Days:         days,
	}
}

type componentKey struct {
	process string
	bucket  string
}

func (a *Aggregator) aggregate(activities []ClassifiedActivity) (float64, []CategorySummary) {
	var totalSeconds float64
	for _, act := range activities {
		totalSeconds += act.DurationSeconds
	}

	catSeconds := make(map[ActivityCategory]float64)
	catCounts := make(map[ActivityCategory]int)
	compSeconds := make(map[ActivityCategory]map[componentKey]float64)
	compCounts := make(map[ActivityCategory]map[componentKey]int)

	for _, act := range activities {
		catSeconds[act.Category] += act.DurationSeconds
		catCounts[act.Category]++

		key := componentKey{
			process: strings.ToLower(act.Process),
			bucket:  a.classifier.WindowBucket(act.Process, act.WindowTitle),
		}
		if compSeconds[act.Category] == nil {
			compSeconds[act.Category] = make(map[componentKey]float64)
			compCounts[act.Category] = make(map[componentKey]int)
		}
		compSeconds[act.Category][key] += act.DurationSeconds
		compCounts[act.Category][key]++
	}

	// Categories come out in canonical enum order, components sorted by
	// (process, bucket), so equal inputs produce identical responses.
	summaries := make([]CategorySummary, 0, len(catSeconds))
	for _, category := range Categories {
		seconds, present := catSeconds[category]
		if !present {
			continue
		}

		components := make([]ComponentSummary, 0, len(compSeconds[category]))
		for key, compSecs := range compSeconds[category] {
			components = append(components, ComponentSummary{
				Process:              key.process,
				WindowBucket:         key.bucket,
				TotalSeconds:         compSecs,
				PercentageOfCategory: percentage(compSecs, seconds),
				EntriesCount:         compCounts[category][key],
			})
		}
		sort.Slice(components, func(i, j int) bool {
			if components[i].Process != components[j].Process {
				return components[i].Process < components[j].Process
			}
			return components[i].WindowBucket < components[j].WindowBucket
		})

		summaries = append(summaries, CategorySummary{
			Category:     category,
			TotalSeconds: seconds,
			Percentage:   percentage(seconds, totalSeconds),
			EntriesCount: catCounts[category],
			Components:   components,
		})
	}

	return totalSeconds, summaries
}

func (a *Aggregator) aggregateByDay(activities []ClassifiedActivity) []DailySummary {
	byDay := make(map[string][]ClassifiedActivity)
	for _, act := range activities {
		day := act.StartTime.UTC().Format(dayLayout)
		byDay[day] = append(byDay[day], act)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		dayTotal, categories := a.aggregate(byDay[day])
		summaries = append(summaries, DailySummary{
			Day:          day,
			TotalSeconds: dayTotal,
			Categories:   categories,
		})
	}
	return summaries
}

// percentage returns part/whole as a percentage rounded to two decimals,
// defaulting to 0 on an empty whole.
func percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(part / whole * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func containsGroupBy(groupBy []GroupBy, want GroupBy) bool {
	for _, g := range groupBy {
		if g == want {
			return true
		}
	}
	return false
}
