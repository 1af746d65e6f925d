package services

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/channel_utils"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type campaignSender struct {
	logger       outbound.LoggerPort
	orchestrator inbound.GenerationOrchestratorPort
	dispatcher   outbound.TaskDispatcher
}

func NewCampaignSender(logger outbound.LoggerPort, orchestrator inbound.GenerationOrchestratorPort,
	dispatcher outbound.TaskDispatcher) inbound.CampaignSenderPort {
	return &campaignSender{
		logger:       logger,
		orchestrator: orchestrator,
		dispatcher:   dispatcher,
	}
}

// Send submits one generation per contact on the worker pool and streams the
// per-contact results back as they land. The result channel closes once every
// contact has been attempted.
func (c *campaignSender) Send(ctx context.Context, project domain.VideoProject,
	contacts []domain.Contact) (<-chan inbound.CampaignResult, error) {
	if !project.IsActive {
		return nil, domain.NewValidationError("project", "project is not active")
	}
	if len(contacts) == 0 {
		return nil, domain.NewValidationError("contacts", "contact list is empty")
	}

	channels := make([]<-chan inbound.CampaignResult, 0, len(contacts))
	for _, contact := range contacts {
		out := make(chan inbound.CampaignResult, 1)
		channels = append(channels, out)

		contact := contact
		err := c.dispatcher.Submit(func() {
			defer close(out)
			record, err := c.orchestrator.Submit(ctx, inbound.SubmitGenerationParams{
				Project: project,
				Contact: contact,
			})
			if err != nil {
				c.logger.ErrorWithFields(err, "campaign submission failed", map[string]interface{}{
					"project_id": project.ID,
					"contact_id": contact.ID,
				})
			}
			out <- inbound.CampaignResult{
				ContactID: contact.ID,
				Record:    record,
				Err:       err,
			}
		})
		if err != nil {
			close(out)
			return nil, err
		}
	}

	return channel_utils.MergeChannels(c.dispatcher, channels...)
}
