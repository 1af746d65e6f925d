package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/gin_interface/dto"
	"github.com/Jfrancis347/personalised-video-2/middleware"
)

type ProjectRequestsController interface {
	CreateRequest(c *gin.Context)
	ListRequests(c *gin.Context)
	ListPending(c *gin.Context)
	ApproveRequest(c *gin.Context)
	RejectRequest(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type projectRequestsController struct {
	logger  outbound.LoggerPort
	service inbound.ProjectRequestServicePort
}

func NewProjectRequestsController(logger outbound.LoggerPort,
	service inbound.ProjectRequestServicePort) ProjectRequestsController {
	return &projectRequestsController{
		logger:  logger,
		service: service,
	}
}

func (ctrl *projectRequestsController) CreateRequest(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	request, err := ctrl.service.Create(c, inbound.CreateProjectRequestParams{
		UserID:   c.GetString(middleware.ContextUserIDKey),
		Name:     req.Name,
		AvatarID: req.AvatarID,
		Script:   req.Script,
	})
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(201, request)
}

func (ctrl *projectRequestsController) ListRequests(c *gin.Context) {
	requests, err := ctrl.service.ListByUser(c, c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, requests)
}

func (ctrl *projectRequestsController) ListPending(c *gin.Context) {
	requests, err := ctrl.service.ListPending(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, requests)
}

// ApproveRequest provisions the project; the response body is the new
// project, not the request.
func (ctrl *projectRequestsController) ApproveRequest(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	project, err := ctrl.service.Approve(c, c.Param("id"), req.VendorID)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, project)
}

func (ctrl *projectRequestsController) RejectRequest(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	request, err := ctrl.service.Reject(c, c.Param("id"), req.Reason)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, request)
}

func (ctrl *projectRequestsController) RegisterRoutes(r *gin.Engine) {
	r.POST("/project-requests", ctrl.CreateRequest)
	r.GET("/project-requests", ctrl.ListRequests)

	admin := r.Group("/admin", middleware.RequireScope("admin"))
	admin.GET("/project-requests", ctrl.ListPending)
	admin.POST("/project-requests/:id/approve", ctrl.ApproveRequest)
	admin.POST("/project-requests/:id/reject", ctrl.RejectRequest)
}
