package historical

import "time"

// ActivityCategory is a high-level label describing what an activity was about.
type ActivityCategory string

const (
	CategoryCoding             ActivityCategory = "CODING"
	CategoryDBTech             ActivityCategory = "DB_TECH"
	CategoryDevOpsGit          ActivityCategory = "DEVOPS_GIT"
	CategoryMeetingsCalls      ActivityCategory = "MEETINGS_CALLS"
	CategoryDocResearchWorkWeb ActivityCategory = "DOC_RESEARCH_WORK_WEB"
	CategorySocialEntertain    ActivityCategory = "SOCIAL_ENTERTAINMENT"
	CategoryBreakIdle          ActivityCategory = "BREAK_IDLE"
	CategoryOtherWeb           ActivityCategory = "OTHER_WEB"
	CategoryMisc               ActivityCategory = "MISC"
)

// Categories lists every category in its canonical order. Summaries are
// emitted in this order so responses are stable across requests.
var Categories = []ActivityCategory{
	CategoryCoding,
	CategoryDBTech,
	CategoryDevOpsGit,
	CategoryMeetingsCalls,
	CategoryDocResearchWorkWeb,
	CategorySocialEntertain,
	CategoryBreakIdle,
	CategoryOtherWeb,
	CategoryMisc,
}

// GroupBy selects an optional bucketing dimension for summaries.
type GroupBy string

const (
	GroupByDay  GroupBy = "day"
	GroupByHour GroupBy = "hour"
)

// ActivityLog is one raw observed interval of device usage, as recorded by
// the upstream tracker. StopTime is nil while the interval is still open.
type ActivityLog struct {
	DeviceID    string     `json:"device_id"`
	StartTime   time.Time  `json:"start_time"`
	StopTime    *time.Time `json:"stop_time,omitempty"`
	Process     string     `json:"process"`
	WindowTitle string     `json:"window_title"`
}

// ClassifiedActivity is an activity log clipped to a query window, carrying
// its derived category and whole-second duration.
type ClassifiedActivity struct {
	DeviceID        string           `json:"device_id"`
	StartTime       time.Time        `json:"start_time"`
	StopTime        time.Time        `json:"stop_time"`
	Process         string           `json:"process"`
	WindowTitle     string           `json:"window_title"`
	Category        ActivityCategory `json:"category"`
	DurationSeconds float64          `json:"duration_seconds"`
}

// ComponentSummary breaks a category down by (process, window bucket) pair.
// For browsers the window bucket is the visited domain, for native apps the
// normalized window title.
type ComponentSummary struct {
	Process              string  `json:"process"`
	WindowBucket         string  `json:"window_bucket"`
	TotalSeconds         float64 `json:"total_seconds"`
	PercentageOfCategory float64 `json:"percentage_of_category"`
	EntriesCount         int     `json:"entries_count"`
}

// CategorySummary is the per-category rollup inside a summary.
type CategorySummary struct {
	Category     ActivityCategory   `json:"category"`
	TotalSeconds float64            `json:"total_seconds"`
	Percentage   float64            `json:"percentage"`
	EntriesCount int                `json:"entries_count"`
	Components   []ComponentSummary `json:"components"`
}

// DailySummary holds one UTC calendar day with its own independent category
// rollup; percentages are relative to that day's total, not the global one.
type DailySummary struct {
	Day          string            `json:"day"`
	TotalSeconds float64           `json:"total_seconds"`
	Categories   []CategorySummary `json:"categories"`
}

// SummaryResult is the top-level activity summary response.
type SummaryResult struct {
	StartTime    time.Time         `json:"start_time"`
	StopTime     time.Time         `json:"stop_time"`
	GroupBy      []GroupBy         `json:"group_by"`
	TotalSeconds float64           `json:"total_seconds"`
	Categories   []CategorySummary `json:"categories"`
	Days         []DailySummary    `json:"days,omitempty"`
}

// ProcessWindowLevel maps an exact (process, window title) pair to an
// attention level on the 0-10 scale. Matching is case-insensitive and the
// last matching rule in table order wins.
type ProcessWindowLevel struct {
	Process     string `json:"process"`
	WindowTitle string `json:"window_title"`
	Level       int    `json:"level"`
}

// AttentionLevel is an activity log extended with its matched level and the
// weighted productive seconds derived from it.
type AttentionLevel struct {
	ActivityLog
	Level                  int     `json:"level"`
	TotalSeconds           float64 `json:"total_seconds"`
	TotalSecondsProductive float64 `json:"total_seconds_productive"`
}

// DailyAttentionSummary is the productivity percentage for one UTC day.
type DailyAttentionSummary struct {
	Day        string  `json:"day"`
	Percentage float64 `json:"percentage"`
}

// HourlyAttentionSummary is the productivity percentage for one UTC hour.
type HourlyAttentionSummary struct {
	Hour       time.Time `json:"hour"`
	Percentage float64   `json:"percentage"`
}

// AttentionSummaryResult is the top-level attention level response.
type AttentionSummaryResult struct {
	StartTime time.Time                `json:"start_time"`
	StopTime  time.Time                `json:"stop_time"`
	GroupBy   []GroupBy                `json:"group_by"`
	Days      []DailyAttentionSummary  `json:"days,omitempty"`
	Hours     []HourlyAttentionSummary `json:"hours,omitempty"`
}

// dayLayout formats daily bucket keys; ISO dates sort correctly as strings.
const dayLayout = "2006-01-02"
