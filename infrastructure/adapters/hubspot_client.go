package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/config"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

const contactProperties = "firstname,lastname,email,company,createdate"

type hubspotContactProperties struct {
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	CreateDate string `json:"createdate"`
}

type hubspotContact struct {
	ID         string                   `json:"id"`
	Properties hubspotContactProperties `json:"properties"`
}

type hubspotContactsResponse struct {
	Results []hubspotContact `json:"results"`
}

type hubspotClient struct {
	ContentFetcher
	logger        outbound.LoggerPort
	hubspotConfig *config.HubSpotConfig
}

func NewHubSpotClient(contentFetcher ContentFetcher, hubspotConfig *config.HubSpotConfig, logger outbound.LoggerPort) outbound.ContactProviderPort {
	return &hubspotClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		hubspotConfig:  hubspotConfig,
	}
}

func (h *hubspotClient) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	url := fmt.Sprintf("%s/crm/v3/objects/contacts?limit=100&properties=%s", h.hubspotConfig.ApiUrl, contactProperties)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		h.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+h.hubspotConfig.Token)
	req.Header.Add("Content-Type", "application/json")

	res, err := h.FetchContent(req)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, fmt.Errorf("HubSpot API error: %d", res.StatusCode)
	}

	var contactsRes hubspotContactsResponse
	if err := json.Unmarshal(res.Body, &contactsRes); err != nil {
		h.logger.Error(err, "Failed to unmarshal the contacts response")
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(contactsRes.Results))
	for _, c := range contactsRes.Results {
		contacts = append(contacts, domain.Contact{
			ID:        c.ID,
			FirstName: c.Properties.FirstName,
			LastName:  c.Properties.LastName,
			Email:     c.Properties.Email,
			Company:   c.Properties.Company,
			CreatedAt: c.Properties.CreateDate,
		})
	}

	return contacts, nil
}

func (h *hubspotClient) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	contacts, err := h.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	for _, contact := range contacts {
		if contact.ID == id {
			return &contact, nil
		}
	}

	return nil, fmt.Errorf("contact %s not found", id)
}

func (h *hubspotClient) ValidateToken(ctx context.Context) bool {
	_, err := h.ListContacts(ctx)
	return err == nil
}
