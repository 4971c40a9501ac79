package http

import (
	"fanhub-webhooks/internal/approval"
	"fanhub-webhooks/internal/model"
	"fanhub-webhooks/internal/moderation"
)

// --- Request DTOs ---

type submitReq struct {
	ProjectID   string         `json:"projectId"   binding:"required"`
	CreatorID   string         `json:"creatorId"   binding:"required"`
	Title       string         `json:"title"       binding:"required"`
	Category    string         `json:"category"    binding:"required"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	FileSize    int64          `json:"fileSize"    binding:"gte=0"`
	CreatorTier string         `json:"creatorTier" binding:"omitempty,oneof=free supporter premium"`
	Metadata    map[string]any `json:"metadata"`
}

func (r submitReq) toInput() approval.SubmitInput {
	return approval.SubmitInput{
		ProjectID:   r.ProjectID,
		CreatorID:   r.CreatorID,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Tags:        r.Tags,
		FileSize:    r.FileSize,
		CreatorTier: model.CreatorTier(r.CreatorTier),
		Metadata:    r.Metadata,
	}
}

// --- Response DTOs ---

type submitResp struct {
	Status             string         `json:"status"`
	ProjectID          string         `json:"projectId"`
	EventID            string         `json:"eventId"`
	Priority           model.Priority `json:"priority"`
	RequiresModeration bool           `json:"requiresModeration"`
	Workflow           any            `json:"workflow"`
}

type flaggedResp struct {
	Status      string                 `json:"status"`
	ProjectID   string                 `json:"projectId"`
	SafetyCheck moderation.SafetyCheck `json:"safetyCheck"`
}

func (h *handler) newSubmitResp(out approval.SubmitOutput) submitResp {
	return submitResp{
		Status:             out.Status,
		ProjectID:          out.ProjectID,
		EventID:            out.EventID,
		Priority:           out.Priority,
		RequiresModeration: out.RequiresModeration,
		Workflow:           out.Workflow,
	}
}

func (h *handler) newFlaggedResp(out approval.SubmitOutput) flaggedResp {
	return flaggedResp{
		Status:      out.Status,
		ProjectID:   out.ProjectID,
		SafetyCheck: out.SafetyCheck,
	}
}
