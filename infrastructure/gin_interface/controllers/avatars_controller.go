package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
)

type AvatarsController interface {
	ListAvatars(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type avatarsController struct {
	logger outbound.LoggerPort
	vendor outbound.VideoVendorPort
}

func NewAvatarsController(logger outbound.LoggerPort, vendor outbound.VideoVendorPort) AvatarsController {
	return &avatarsController{
		logger: logger,
		vendor: vendor,
	}
}

func (ctrl *avatarsController) ListAvatars(c *gin.Context) {
	avatars, err := ctrl.vendor.ListAvatars(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, avatars)
}

func (ctrl *avatarsController) RegisterRoutes(r *gin.Engine) {
	r.GET("/avatars", ctrl.ListAvatars)
}
