package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/gin_interface/dto"
)

type GenerationsController interface {
	SubmitGeneration(c *gin.Context)
	ListGenerations(c *gin.Context)
	SendCampaign(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type generationsController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.GenerationOrchestratorPort
	campaigns    inbound.CampaignSenderPort
	projects     outbound.ProjectStorePort
	generations  outbound.GenerationStorePort
	contacts     outbound.ContactProviderPort
}

func NewGenerationsController(logger outbound.LoggerPort, orchestrator inbound.GenerationOrchestratorPort,
	campaigns inbound.CampaignSenderPort, projects outbound.ProjectStorePort,
	generations outbound.GenerationStorePort, contacts outbound.ContactProviderPort) GenerationsController {
	return &generationsController{
		logger:       logger,
		orchestrator: orchestrator,
		campaigns:    campaigns,
		projects:     projects,
		generations:  generations,
		contacts:     contacts,
	}
}

func (g *generationsController) SubmitGeneration(c *gin.Context) {
	var req dto.SubmitGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	project, err := g.projects.GetProject(c, c.Param("projectId"))
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	var contact domain.Contact
	if req.Test {
		// Test sends use a synthetic contact, no CRM round trip.
		contact = domain.Contact{ID: req.ContactID, FirstName: "Test", Company: "Test Co"}
	} else {
		resolved, err := g.contacts.GetContact(c, req.ContactID)
		if err != nil {
			abortWithMappedStatus(c, err)
			return
		}
		contact = *resolved
	}

	record, err := g.orchestrator.Submit(c, inbound.SubmitGenerationParams{
		Project: *project,
		Contact: contact,
		Test:    req.Test,
	})
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(201, record)
}

func (g *generationsController) ListGenerations(c *gin.Context) {
	records, err := g.generations.ListByProject(c, c.Param("projectId"))
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, records)
}

func (g *generationsController) SendCampaign(c *gin.Context) {
	var req dto.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	project, err := g.projects.GetProject(c, c.Param("projectId"))
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	contacts, err := g.contacts.ListContacts(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}
	if len(req.ContactIDs) > 0 {
		wanted := make(map[string]bool, len(req.ContactIDs))
		for _, id := range req.ContactIDs {
			wanted[id] = true
		}
		filtered := contacts[:0]
		for _, contact := range contacts {
			if wanted[contact.ID] {
				filtered = append(filtered, contact)
			}
		}
		contacts = filtered
	}

	results, err := g.campaigns.Send(c, *project, contacts)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	response := dto.CampaignResponse{Results: make([]dto.CampaignResultResponse, 0, len(contacts))}
	for result := range results {
		entry := dto.CampaignResultResponse{ContactID: result.ContactID, Record: result.Record}
		if result.Err != nil {
			entry.Error = result.Err.Error()
			response.Failed++
		} else {
			response.Submitted++
		}
		response.Results = append(response.Results, entry)
	}

	c.JSON(200, response)
}

func (g *generationsController) RegisterRoutes(r *gin.Engine) {
	r.POST("/projects/:projectId/generations", g.SubmitGeneration)
	r.GET("/projects/:projectId/generations", g.ListGenerations)
	r.POST("/projects/:projectId/campaign", g.SendCampaign)
}
