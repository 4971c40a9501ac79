package http

import (
	"regexp"

	"fanhub-webhooks/internal/signup"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// --- Request DTOs ---

type processReq struct {
	UserID       string `json:"userId"       binding:"required"`
	Email        string `json:"email"        binding:"required"`
	Name         string `json:"name"         binding:"required"`
	ReferralCode string `json:"referralCode"`
	Tier         string `json:"tier"`
}

func (r processReq) validate() error {
	if !emailPattern.MatchString(r.Email) {
		return signup.ErrInvalidEmail
	}
	return nil
}

func (r processReq) toInput() signup.ProcessInput {
	return signup.ProcessInput{
		UserID:       r.UserID,
		Email:        r.Email,
		Name:         r.Name,
		ReferralCode: r.ReferralCode,
		Tier:         r.Tier,
	}
}

// --- Response DTOs ---

type processResp struct {
	UserID       string `json:"userId"`
	EventID      string `json:"eventId"`
	Forwarded    bool   `json:"forwarded"`
	ForwardError string `json:"forwardError,omitempty"`
}

func (h *handler) newProcessResp(out signup.ProcessOutput) processResp {
	return processResp{
		UserID:       out.UserID,
		EventID:      out.EventID,
		Forwarded:    out.Forwarded,
		ForwardError: out.ForwardError,
	}
}
