package inbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

// CampaignResult reports the outcome of one contact's submission.
type CampaignResult struct {
	ContactID string
	Record    *domain.GenerationRecord
	Err       error
}

// CampaignSenderPort fans one project's generation out over many contacts.
// One contact failing never aborts the rest.
type CampaignSenderPort interface {
	Send(ctx context.Context, project domain.VideoProject, contacts []domain.Contact) (<-chan CampaignResult, error)
}
