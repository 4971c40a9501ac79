package moderation

const MiB int64 = 1 << 20

// DefaultKeywords is the disallowed term set used when none is configured.
var DefaultKeywords = []string{"hate", "violence", "explicit", "nsfw", "gore", "harassment", "scam"}

// Content is the part of a submission the safety pass looks at.
type Content struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	FileSize    int64 // bytes
	Metadata    map[string]any
}

// SafetyCheck is the outcome of Check.
type SafetyCheck struct {
	Safe           bool     `json:"safe"`
	FlaggedTerms   []string `json:"flaggedTerms,omitempty"`
	Reasons        []string `json:"reasons,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	RequiresReview bool     `json:"requiresReview"`
}

// CategoryPolicy holds the thresholds for one project category. Zero means unlimited.
type CategoryPolicy struct {
	MaxFileSize          int64
	MaxTags              int
	MaxDescriptionLength int
	MaxMetadataKeys      int
	NoFile               bool // text-only category, any attached file is rejected
	ManualReview         bool
}

// warnRatio is the share of MaxFileSize above which a warning is added.
const warnRatio = 0.8

var defaultPolicies = map[string]CategoryPolicy{
	"theory": {
		MaxTags:              20,
		MaxDescriptionLength: 20000,
		MaxMetadataKeys:      20,
		NoFile:               true,
	},
	"animation": {
		MaxFileSize:          500 * MiB,
		MaxTags:              15,
		MaxDescriptionLength: 5000,
		MaxMetadataKeys:      30,
		ManualReview:         true,
	},
	"artwork": {
		MaxFileSize:          50 * MiB,
		MaxTags:              15,
		MaxDescriptionLength: 5000,
		MaxMetadataKeys:      20,
	},
	"music": {
		MaxFileSize:          200 * MiB,
		MaxTags:              15,
		MaxDescriptionLength: 5000,
		MaxMetadataKeys:      20,
		ManualReview:         true,
	},
}

var fallbackPolicy = CategoryPolicy{
	MaxFileSize:          100 * MiB,
	MaxTags:              10,
	MaxDescriptionLength: 5000,
	MaxMetadataKeys:      10,
	ManualReview:         true,
}
