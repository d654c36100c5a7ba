package historical

import (
	"net/url"
	"strings"
	"time"
)

// Classifier maps raw activity logs to categories using an ordered rule set.
// It holds no mutable state and may be shared across requests.
type Classifier struct {
	rules RuleSet
}

// NewClassifier creates a classifier for the given rule set.
func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify resolves the category for a single log. Resolution order: system
// markers, process rules, window substring rules, browser domain heuristic,
// then CategoryMisc. Classification is total: it never fails.
func (c *Classifier) Classify(log ActivityLog) ActivityCategory {
	process := strings.ToLower(log.Process)
	window := strings.ToLower(log.WindowTitle)

	if cat, ok := c.classifySystem(process, window); ok {
		return cat
	}
	if cat, ok := c.classifyByProcess(process); ok {
		return cat
	}
	if cat, ok := c.classifyByWindow(window); ok {
		return cat
	}
	if cat, ok := c.classifyBrowser(process, window); ok {
		return cat
	}
	return CategoryMisc
}

// ClassifyLogs clips every log to [startTime, stopTime], derives its
// category, and drops logs that do not overlap the window.
func (c *Classifier) ClassifyLogs(deviceID string, logs []ActivityLog, startTime, stopTime time.Time) []ClassifiedActivity {
	classified := make([]ClassifiedActivity, 0, len(logs))

	for _, log := range logs {
		start, stop, ok := Clip(log, startTime, stopTime)
		if !ok {
			continue
		}

		classified = append(classified, ClassifiedActivity{
			DeviceID:        deviceID,
			StartTime:       start,
			StopTime:        stop,
			Process:         log.Process,
			WindowTitle:     log.WindowTitle,
			Category:        c.Classify(log),
			DurationSeconds: DurationSeconds(start, stop),
		})
	}

	return classified
}

func (c *Classifier) classifySystem(process, window string) (ActivityCategory, bool) {
	switch process {
	case pauseMarker, resumeMarker:
		return CategoryBreakIdle, true
	}
	switch window {
	case pauseMarker, resumeMarker:
		return CategoryBreakIdle, true
	}
	return "", false
}

func (c *Classifier) classifyByProcess(process string) (ActivityCategory, bool) {
	for _, rule := range c.rules.ProcessRules {
		rp := strings.ToLower(rule.Process)
		if rule.MatchPrefix && strings.HasPrefix(process, rp) {
			return rule.Category, true
		}
		if !rule.MatchPrefix && process == rp {
			return rule.Category, true
		}
	}
	return "", false
}

func (c *Classifier) classifyByWindow(window string) (ActivityCategory, bool) {
	for _, rule := range c.rules.WindowRules {
		if strings.Contains(window, strings.ToLower(rule.Substring)) {
			return rule.Category, true
		}
	}
	return "", false
}

func (c *Classifier) classifyBrowser(process, window string) (ActivityCategory, bool) {
	if !c.rules.Browsers[process] {
		return "", false
	}
	domain, ok := extractDomain(window)
	if !ok {
		return "", false
	}
	if matchesDomain(domain, c.rules.SocialDomains) {
		return CategorySocialEntertain, true
	}
	if matchesDomain(domain, c.rules.DevDocsDomains) {
		return CategoryDocResearchWorkWeb, true
	}
	return CategoryOtherWeb, true
}

// WindowBucket returns the normalized identifier of what was being viewed
// within a process: the domain for browsers, the trimmed lower-cased title
// otherwise. Used by the aggregator for composition analysis.
func (c *Classifier) WindowBucket(process, windowTitle string) string {
	process = strings.ToLower(process)
	title := strings.TrimSpace(windowTitle)

	if c.rules.Browsers[process] {
		if domain, ok := extractDomain(strings.ToLower(title)); ok {
			return domain
		}
		return "(browser:unknown)"
	}

	if title == "" {
		return "(no-title)"
	}
	return strings.ToLower(title)
}

// extractDomain is a best-effort domain extractor from a window title that
// may contain a URL. Malformed input yields (_, false), never an error, so
// callers can fall through to less specific rules.
func extractDomain(windowTitle string) (string, bool) {
	if windowTitle == "" {
		return "", false
	}

	if strings.Contains(windowTitle, "http://") || strings.Contains(windowTitle, "https://") {
		fields := strings.Fields(windowTitle)
		if len(fields) > 0 {
			if parsed, err := url.Parse(fields[0]); err == nil && parsed.Host != "" {
				return strings.ToLower(parsed.Host), true
			}
		}
	}

	// Fallback: pick the first token that looks like a domain.
	for _, token := range strings.Fields(windowTitle) {
		if strings.Contains(token, ".") && !strings.HasPrefix(token, "[") {
			return strings.ToLower(token), true
		}
	}
	return "", false
}

func matchesDomain(domain string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}
