package signup

import "fanhub-webhooks/internal/model"

// --- UseCase Inputs ---

type ProcessInput struct {
	UserID       string
	Email        string
	Name         string
	ReferralCode string
	Tier         string
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	UserID       string
	EventID      string
	Forwarded    bool
	ForwardError string
}

// Event is the enriched payload sent to the workflow engine.
type Event struct {
	model.Envelope
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode,omitempty"`
	Tier         string `json:"tier,omitempty"`
}
