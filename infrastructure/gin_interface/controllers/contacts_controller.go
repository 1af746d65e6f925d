package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
)

type ContactsController interface {
	ListContacts(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type contactsController struct {
	logger   outbound.LoggerPort
	contacts outbound.ContactProviderPort
}

func NewContactsController(logger outbound.LoggerPort, contacts outbound.ContactProviderPort) ContactsController {
	return &contactsController{
		logger:   logger,
		contacts: contacts,
	}
}

func (ctrl *contactsController) ListContacts(c *gin.Context) {
	contacts, err := ctrl.contacts.ListContacts(c)
	if err != nil {
		abortWithMappedStatus(c, err)
		return
	}

	c.JSON(200, contacts)
}

func (ctrl *contactsController) RegisterRoutes(r *gin.Engine) {
	r.GET("/contacts", ctrl.ListContacts)
}
