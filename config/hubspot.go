package config

import (
	"fmt"
	"os"
)

type HubSpotConfig struct {
	ApiUrl string
	Token  string
}

func GetHubSpotConfig() (*HubSpotConfig, error) {
	apiUrl := os.Getenv("HUBSPOT_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.hubapi.com"
	}
	token := os.Getenv("HUBSPOT_PRIVATE_APP_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("HUBSPOT_PRIVATE_APP_TOKEN must be set")
	}

	return &HubSpotConfig{
		ApiUrl: apiUrl,
		Token:  token,
	}, nil
}
