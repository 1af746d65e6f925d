package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/gin_interface/dto"
	"github.com/Jfrancis347/personalised-video-2/middleware"
)

// maxAvatarVideoBytes caps uploads at 200MB, mirroring the vendor's own limit.
const maxAvatarVideoBytes = 200 << 20

type AvatarRequestsController interface {
	CreateRequest(c *gin.Context)
	ListRequests(c *gin.Context)
	ListPending(c *gin.Context)
	ApproveRequest(c *gin.Context)
	RejectRequest(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type avatarRequestsController struct {
	logger  outbound.LoggerPort
	service inbound.AvatarRequestServicePort
}

func NewAvatarRequestsController(logger outbound.LoggerPort,
	service inbound.AvatarRequestServicePort) AvatarRequestsController {
	return &avatarRequestsController{
		logger:  logger,
		service: service,
	}
}

func (ctrl *avatarRequestsController) CreateRequest(c *gin.Context) {
	name := c.PostForm("name")
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": "video file is required"})
		return
	}
	if fileHeader.Size > maxAvatarVideoBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "video exceeds the upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	request, err := ctrl.service.Create(c, inbound.CreateAvatarRequestParams{
		UserID:      c.GetString(middleware.ContextUserIDKey),
		Name:        name,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Video:       content,
	})
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(201, request)
}

func (ctrl *avatarRequestsController) ListRequests(c *gin.Context) {
	requests, err := ctrl.service.ListByUser(c, c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, requests)
}

func (ctrl *avatarRequestsController) ListPending(c *gin.Context) {
	requests, err := ctrl.service.ListPending(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, requests)
}

func (ctrl *avatarRequestsController) ApproveRequest(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	request, err := ctrl.service.Approve(c, c.Param("id"), req.VendorID)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, request)
}

func (ctrl *avatarRequestsController) RejectRequest(c *gin.Context) {
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

func (ctrl *avatarRequestsController) RegisterRoutes(r *gin.Engine) {
	r.POST("/avatar-requests", ctrl.CreateRequest)
	r.GET("/avatar-requests", ctrl.ListRequests)

	admin := r.Group("/admin", middleware.RequireScope("admin"))
	admin.GET("/avatar-requests", ctrl.ListPending)
	admin.POST("/avatar-requests/:id/approve", ctrl.ApproveRequest)
	admin.POST("/avatar-requests/:id/reject", ctrl.RejectRequest)
}
