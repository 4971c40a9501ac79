package model

import "time"

// EventSource tags every forwarded event with the integration it came from.
type EventSource string

const (
	SourceSignup          EventSource = "fanhub-signup"
	SourceProjectApproval EventSource = "fanhub-project-approval"
)

// EventType is the workflow engine event name.
type EventType string

const (
	EventUserSignup       EventType = "user.signup"
	EventProjectSubmitted EventType = "project.submitted"
)

// Priority is the workflow priority derived from the creator tier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// CreatorTier is the creator's monetization tier.
type CreatorTier string

const (
	TierFree      CreatorTier = "free"
	TierSupporter CreatorTier = "supporter"
	TierPremium   CreatorTier = "premium"
)

// PriorityFor maps a creator tier to a workflow priority.
func PriorityFor(tier CreatorTier) Priority {
	switch tier {
	case TierPremium:
		return PriorityHigh
	case TierSupporter:
		return PriorityNormal
	default:
		return PriorityLow
	}
}

// Envelope is the enrichment shared by all forwarded events.
type Envelope struct {
	Event       EventType   `json:"event"`
	EventID     string      `json:"eventId"`
	Source      EventSource `json:"source"`
	ProcessedAt time.Time   `json:"processedAt"`
}
