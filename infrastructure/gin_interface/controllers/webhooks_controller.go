package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/gin_interface/dto"
)

type WebhooksController interface {
	HandleHubspotEvent(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type webhooksController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.GenerationOrchestratorPort
	projects     outbound.ProjectStorePort
	contacts     outbound.ContactProviderPort
}

func NewWebhooksController(logger outbound.LoggerPort, orchestrator inbound.GenerationOrchestratorPort,
	projects outbound.ProjectStorePort, contacts outbound.ContactProviderPort) WebhooksController {
	return &webhooksController{
		logger:       logger,
		orchestrator: orchestrator,
		projects:     projects,
		contacts:     contacts,
	}
}

// HandleHubspotEvent submits one generation per active project for a freshly
// created contact. One project failing does not stop the others.
func (ctrl *webhooksController) HandleHubspotEvent(c *gin.Context) {
	var event dto.HubspotWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	if event.SubscriptionType != "contact.creation" {
		c.JSON(200, dto.WebhookResponse{})
		return
	}

	contactID := strconv.FormatInt(event.ObjectID, 10)
	contact, err := ctrl.contacts.GetContact(c, contactID)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	projects, err := ctrl.projects.ListActiveProjects(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	var response dto.WebhookResponse
	for _, project := range projects {
		_, err := ctrl.orchestrator.Submit(c, inbound.SubmitGenerationParams{
			Project: project,
			Contact: *contact,
		})
		if err != nil {
			ctrl.logger.ErrorWithFields(err, "webhook generation failed", map[string]interface{}{
				"project_id": project.ID,
				"contact_id": contact.ID,
			})
			response.Failed++
			continue
		}
		response.Processed++
	}

	c.JSON(200, response)
}

func (ctrl *webhooksController) RegisterRoutes(r *gin.Engine) {
	r.POST("/webhooks/hubspot", ctrl.HandleHubspotEvent)
}
