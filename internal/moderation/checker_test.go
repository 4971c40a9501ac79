package moderation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fanhub-webhooks/internal/moderation"
)

func TestCheck_Keywords(t *testing.T) {
	c := moderation.New(nil)

	tests := []struct {
		name    string
		content moderation.Content
		safe    bool
		flagged []string
	}{
		{
			name:    "clean",
			content: moderation.Content{Title: "Why the moon is hollow", Description: "A fan theory", Category: "theory"},
			safe:    true,
		},
		{
			name:    "keyword in title",
			content: moderation.Content{Title: "I HATE this ending", Category: "theory"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "keyword in description",
			content: moderation.Content{Title: "Ep 4", Description: "contains graphic Violence", Category: "animation"},
			safe:    false,
			flagged: []string{"violence"},
		},
		{
			name:    "keyword split by markup",
			content: moderation.Content{Title: "<b>ha</b>te", Category: "theory"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "keyword wrapped in markup",
			content: moderation.Content{Title: "<em>hate</em> speech", Category: "theory"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "keyword inside script element",
			content: moderation.Content{Title: "<script>hate</script>", Category: "artwork"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "keyword inside style element",
			content: moderation.Content{Title: "<style>gore</style>", Category: "artwork"},
			safe:    false,
			flagged: []string{"gore"},
		},
		{
			name:    "keyword in attribute value",
			content: moderation.Content{Title: `<img alt="hate">`, Category: "artwork"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "keyword behind entity",
			content: moderation.Content{Description: "&#104;ate", Category: "artwork"},
			safe:    false,
			flagged: []string{"hate"},
		},
		{
			name:    "substring match",
			content: moderation.Content{Title: "whatever", Description: "hateful", Category: "theory"},
			safe:    false,
			flagged: []string{"hate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Check(tt.content)
			assert.Equal(t, tt.safe, res.Safe)
			assert.Equal(t, tt.flagged, res.FlaggedTerms)
		})
	}
}

func TestCheck_CustomKeywords(t *testing.T) {
	c := moderation.New([]string{" Spoiler ", ""})

	assert.False(t, c.Check(moderation.Content{Title: "big SPOILER inside"}).Safe)
	assert.True(t, c.Check(moderation.Content{Title: "hate"}).Safe, "custom list replaces defaults")
}

func TestCheck_CategoryThresholds(t *testing.T) {
	c := moderation.New(nil)

	t.Run("file too large", func(t *testing.T) {
		res := c.Check(moderation.Content{Title: "clip", Category: "artwork", FileSize: 51 * moderation.MiB})
		assert.False(t, res.Safe)
		assert.Len(t, res.Reasons, 1)
		assert.Empty(t, res.FlaggedTerms)
	})

	t.Run("close to limit warns", func(t *testing.T) {
		res := c.Check(moderation.Content{Title: "clip", Category: "artwork", FileSize: 45 * moderation.MiB})
		assert.True(t, res.Safe)
		assert.NotEmpty(t, res.Warnings)
		assert.True(t, res.RequiresReview)
	})

	t.Run("theory rejects files", func(t *testing.T) {
		res := c.Check(moderation.Content{Title: "essay", Category: "theory", FileSize: 1})
		assert.False(t, res.Safe)
		assert.Equal(t, []string{"theory submissions take no file"}, res.Reasons)
		assert.Empty(t, res.Warnings)

		assert.True(t, c.Check(moderation.Content{Title: "essay", Category: "theory"}).Safe)
	})

	t.Run("too many tags", func(t *testing.T) {
		tags := make([]string, 21)
		res := c.Check(moderation.Content{Title: "t", Category: "theory", Tags: tags})
		assert.False(t, res.Safe)
	})

	t.Run("description too long", func(t *testing.T) {
		res := c.Check(moderation.Content{Title: "t", Category: "artwork", Description: strings.Repeat("a", 5001)})
		assert.False(t, res.Safe)
	})

	t.Run("too much metadata", func(t *testing.T) {
		meta := map[string]any{}
		for i := 0; i < 11; i++ {
			meta[strings.Repeat("k", i+1)] = i
		}
		res := c.Check(moderation.Content{Title: "t", Category: "unknown", Metadata: meta})
		assert.False(t, res.Safe)
	})

	t.Run("manual review categories", func(t *testing.T) {
		assert.True(t, c.Check(moderation.Content{Title: "t", Category: "animation"}).RequiresReview)
		assert.True(t, c.Check(moderation.Content{Title: "t", Category: "music"}).RequiresReview)
		assert.False(t, c.Check(moderation.Content{Title: "t", Category: "theory"}).RequiresReview)
	})
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, int64(500*moderation.MiB), moderation.PolicyFor("Animation").MaxFileSize)
	assert.True(t, moderation.PolicyFor("podcast").ManualReview)
	assert.True(t, moderation.PolicyFor("theory").NoFile)
	assert.Zero(t, moderation.PolicyFor("theory").MaxFileSize)
}
