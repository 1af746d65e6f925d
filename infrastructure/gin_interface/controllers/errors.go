package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

// abortWithMappedStatus translates domain error types to HTTP statuses:
// caller input 400, vendor upstream 502, persistence and everything else 500.
func abortWithMappedStatus(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vendorErr *domain.VendorError
	if errors.As(err, &vendorErr) {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
