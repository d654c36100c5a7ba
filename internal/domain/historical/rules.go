package historical

// Pause markers injected by the tracker when the user suspends capture.
const (
	pauseMarker  = "[pause]"
	resumeMarker = "[resume]"
)

// ProcessRule matches a process name (exact or prefix) to a category.
type ProcessRule struct {
	Process     string
	Category    ActivityCategory
	MatchPrefix bool
}

// WindowRule matches a window title / URL substring to a category.
type WindowRule struct {
	Substring string
	Category  ActivityCategory
}

// RuleSet is the data driving classification. Rule order is significant:
// evaluation stops at the first match, so more specific rules go first.
// A RuleSet is never mutated after construction and is safe to share across
// concurrent requests.
type RuleSet struct {
	ProcessRules []ProcessRule
	WindowRules  []WindowRule

	// Browsers are processes whose window titles carry URLs.
	Browsers map[string]bool
	// SocialDomains and DevDocsDomains are matched by suffix against the
	// domain extracted from a browser window title.
	SocialDomains  []string
	DevDocsDomains []string
}

// DefaultRuleSet returns the built-in classification rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		ProcessRules: []ProcessRule{
			// Coding IDEs / editors
			{Process: "vscode", Category: CategoryCoding},
			{Process: "code", Category: CategoryCoding},
			{Process: "pycharm", Category: CategoryCoding, MatchPrefix: true},
			{Process: "idea", Category: CategoryCoding, MatchPrefix: true},
			// DB tools
			{Process: "sequel-ace", Category: CategoryDBTech},
			{Process: "sequel-pro", Category: CategoryDBTech},
			{Process: "pgadmin", Category: CategoryDBTech},
			{Process: "dbeaver", Category: CategoryDBTech},
			// DevOps / Git / terminals
			{Process: "iterm2", Category: CategoryDevOpsGit},
			{Process: "terminal", Category: CategoryDevOpsGit},
			{Process: "wezterm", Category: CategoryDevOpsGit},
			{Process: "sourcetree", Category: CategoryDevOpsGit},
			{Process: "gitkraken", Category: CategoryDevOpsGit},
			// Meetings / calls
			{Process: "teams", Category: CategoryMeetingsCalls, MatchPrefix: true},
			{Process: "teams2", Category: CategoryMeetingsCalls, MatchPrefix: true},
			{Process: "zoom", Category: CategoryMeetingsCalls, MatchPrefix: true},
			{Process: "slack", Category: CategoryMeetingsCalls, MatchPrefix: true},
			{Process: "google meet", Category: CategoryMeetingsCalls, MatchPrefix: true},
			{Process: "discord", Category: CategorySocialEntertain, MatchPrefix: true},
		},
		WindowRules: []WindowRule{
			// Work / docs / research web
			{Substring: "trello.com", Category: CategoryDocResearchWorkWeb},
			{Substring: "jira", Category: CategoryDocResearchWorkWeb},
			{Substring: "github.com", Category: CategoryDocResearchWorkWeb},
			{Substring: "gitlab.com", Category: CategoryDocResearchWorkWeb},
			{Substring: "notion.so", Category: CategoryDocResearchWorkWeb},
			{Substring: "confluence", Category: CategoryDocResearchWorkWeb},
			{Substring: "metodostandup.it", Category: CategoryDocResearchWorkWeb},
			{Substring: "onrender.com", Category: CategoryDocResearchWorkWeb},
			{Substring: "chatgpt.com", Category: CategoryDocResearchWorkWeb},
			{Substring: "tc2services.app", Category: CategoryDocResearchWorkWeb},
			// DB related web
			{Substring: "mongodb.com", Category: CategoryDBTech},
			{Substring: "supabase.com", Category: CategoryDBTech},
			{Substring: "neon.tech", Category: CategoryDBTech},
			// Social / entertainment web
			{Substring: "youtube.com", Category: CategorySocialEntertain},
			{Substring: "tiktok.com", Category: CategorySocialEntertain},
			{Substring: "instagram.com", Category: CategorySocialEntertain},
			{Substring: "facebook.com", Category: CategorySocialEntertain},
			{Substring: "twitter.com", Category: CategorySocialEntertain},
			{Substring: "x.com", Category: CategorySocialEntertain},
			{Substring: "whatsapp", Category: CategorySocialEntertain},
		},
		Browsers: map[string]bool{
			"chrome":   true,
			"chromium": true,
			"brave":    true,
			"edge":     true,
			"safari":   true,
			"firefox":  true,
		},
		SocialDomains: []string{
			"youtube.com", "tiktok.com", "instagram.com",
			"facebook.com", "twitter.com", "x.com",
		},
		DevDocsDomains: []string{
			"github.com", "gitlab.com", "bitbucket.org",
			"vercel.com", "render.com", "onrender.com",
		},
	}
}
