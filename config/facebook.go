package config

import (
	"fmt"
	"os"
)

type FacebookConfig struct {
	GraphApiUrl string
}

func GetFacebookConfig() (*FacebookConfig, error) {
	graphApiUrl := os.Getenv("FACEBOOK_GRAPH_API_URL")
	if graphApiUrl == "" {
		return nil, fmt.Errorf("FACEBOOK_GRAPH_API_URL must be set")
	}

	return &FacebookConfig{
		GraphApiUrl: graphApiUrl,
	}, nil
}
