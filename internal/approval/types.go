package approval

import (
	"fanhub-webhooks/internal/model"
	"fanhub-webhooks/internal/moderation"
)

// Submission statuses returned to the caller.
const (
	StatusSubmitted = "submitted"
	StatusFlagged   = "flagged"
)

// --- UseCase Inputs ---

type SubmitInput struct {
	ProjectID   string
	CreatorID   string
	Title       string
	Category    string
	Description string
	Tags        []string
	FileSize    int64
	CreatorTier model.CreatorTier
	Metadata    map[string]any
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Status             string
	ProjectID          string
	EventID            string
	Priority           model.Priority
	RequiresModeration bool
	SafetyCheck        moderation.SafetyCheck
	Workflow           any
}

// Flagged reports whether the submission was stopped by the safety pass.
func (o SubmitOutput) Flagged() bool {
	return o.Status == StatusFlagged
}

// Event is the enriched payload sent to the workflow engine.
type Event struct {
	model.Envelope
	ProjectID          string                 `json:"projectId"`
	CreatorID          string                 `json:"creatorId"`
	Title              string                 `json:"title"`
	Category           string                 `json:"category"`
	Description        string                 `json:"description,omitempty"`
	Tags               []string               `json:"tags,omitempty"`
	FileSize           int64                  `json:"fileSize,omitempty"`
	CreatorTier        model.CreatorTier      `json:"creatorTier,omitempty"`
	Metadata           map[string]any         `json:"metadata,omitempty"`
	Priority           model.Priority         `json:"priority"`
	RequiresModeration bool                   `json:"requiresModeration"`
	SafetyCheck        moderation.SafetyCheck `json:"safetyCheck"`
}
