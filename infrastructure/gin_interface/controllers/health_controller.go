package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthController interface {
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type healthController struct{}

func NewHealthController() HealthController {
	return &healthController{}
}

func (ctrl *healthController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (ctrl *healthController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", ctrl.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
