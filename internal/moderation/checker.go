package moderation

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type checker struct {
	keywords []string
	policies map[string]CategoryPolicy
	strip    *bluemonday.Policy
}

// New creates a Checker for keywords, falling back to DefaultKeywords.
func New(keywords []string) Checker {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			normalized = append(normalized, k)
		}
	}

	return &checker{
		keywords: normalized,
		policies: defaultPolicies,
		strip:    bluemonday.StrictPolicy(),
	}
}

// PolicyFor returns the thresholds applied to category.
func PolicyFor(category string) CategoryPolicy {
	if p, ok := defaultPolicies[strings.ToLower(category)]; ok {
		return p
	}
	return fallbackPolicy
}

// Check scans title and description for disallowed terms (case-insensitive
// substring match) and applies the category thresholds. The raw text and the
// markup-stripped text are both scanned: stripping drops script bodies and
// attribute values, while the raw text misses keywords split by tags.
func (c *checker) Check(content Content) SafetyCheck {
	result := SafetyCheck{Safe: true}

	raw := strings.ToLower(html.UnescapeString(content.Title + "\n" + content.Description))
	stripped := strings.ToLower(c.plain(content.Title) + "\n" + c.plain(content.Description))
	for _, k := range c.keywords {
		if strings.Contains(raw, k) || strings.Contains(stripped, k) {
			result.FlaggedTerms = append(result.FlaggedTerms, k)
		}
	}
	if len(result.FlaggedTerms) > 0 {
		result.Safe = false
		result.Reasons = append(result.Reasons, "disallowed terms in title or description")
	}

	policy := PolicyFor(content.Category)
	result.RequiresReview = policy.ManualReview

	if policy.NoFile && content.FileSize > 0 {
		result.Safe = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("%s submissions take no file", content.Category))
	} else if policy.MaxFileSize > 0 {
		switch {
		case content.FileSize > policy.MaxFileSize:
			result.Safe = false
			result.Reasons = append(result.Reasons, fmt.Sprintf("file size %d exceeds %d bytes for %s", content.FileSize, policy.MaxFileSize, content.Category))
		case float64(content.FileSize) > float64(policy.MaxFileSize)*warnRatio:
			result.Warnings = append(result.Warnings, "file size close to category limit")
		}
	}
	if policy.MaxTags > 0 && len(content.Tags) > policy.MaxTags {
		result.Safe = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d tags exceeds %d for %s", len(content.Tags), policy.MaxTags, content.Category))
	}
	if policy.MaxDescriptionLength > 0 && len([]rune(content.Description)) > policy.MaxDescriptionLength {
		result.Safe = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("description exceeds %d characters", policy.MaxDescriptionLength))
	}
	if policy.MaxMetadataKeys > 0 && len(content.Metadata) > policy.MaxMetadataKeys {
		result.Safe = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("metadata has %d keys, limit is %d", len(content.Metadata), policy.MaxMetadataKeys))
	}

	if len(result.Warnings) > 0 {
		result.RequiresReview = true
	}
	return result
}

// plain strips markup so tags cannot split or hide a keyword.
func (c *checker) plain(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(c.strip.Sanitize(s))
}
