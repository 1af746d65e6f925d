package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
)

type AdsMetricsController interface {
	GetMetrics(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type adsMetricsController struct {
	logger  outbound.LoggerPort
	metrics inbound.AdsMetricsPort
}

func NewAdsMetricsController(logger outbound.LoggerPort, metrics inbound.AdsMetricsPort) AdsMetricsController {
	return &adsMetricsController{
		logger:  logger,
		metrics: metrics,
	}
}

// GetMetrics proxies the caller's own graph token, taken from the
// X-Fb-Access-Token header. The service's JWT never reaches the graph API.
func (ctrl *adsMetricsController) GetMetrics(c *gin.Context) {
	token := strings.TrimSpace(c.GetHeader("X-Fb-Access-Token"))
	if token == "" {
		c.AbortWithStatusJSON(400, gin.H{"error": "X-Fb-Access-Token header is required"})
		return
	}

	metrics, err := ctrl.metrics.Aggregate(c, token)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, metrics)
}

func (ctrl *adsMetricsController) RegisterRoutes(r *gin.Engine) {
	r.GET("/ads/metrics", ctrl.GetMetrics)
}
