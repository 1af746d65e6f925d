package dto

import "github.com/Jfrancis347/personalised-video-2/domain"

type CampaignResultResponse struct {
	ContactID string                   `json:"contact_id"`
	Record    *domain.GenerationRecord `json:"record,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

type CampaignResponse struct {
	Submitted int                      `json:"submitted"`
	Failed    int                      `json:"failed"`
	Results   []CampaignResultResponse `json:"results"`
}

type WebhookResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
