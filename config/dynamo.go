package config

import (
	"fmt"
	"os"
)

type DynamoConfig struct {
	GenerationsTable    string
	ProjectsTable       string
	AvatarRequestsTable string
}

func GetDynamoConfig() (*DynamoConfig, error) {
	generationsTable := os.Getenv("GENERATIONS_TABLE_NAME")
	if generationsTable == "" {
		return nil, fmt.Errorf("GENERATIONS_TABLE_NAME must be set")
	}
	projectsTable := os.Getenv("PROJECTS_TABLE_NAME")
	if projectsTable == "" {
		return nil, fmt.Errorf("PROJECTS_TABLE_NAME must be set")
	}
	avatarRequestsTable := os.Getenv("AVATAR_REQUESTS_TABLE_NAME")
	if avatarRequestsTable == "" {
		return nil, fmt.Errorf("AVATAR_REQUESTS_TABLE_NAME must be set")
	}

	return &DynamoConfig{
		GenerationsTable:    generationsTable,
		ProjectsTable:       projectsTable,
		AvatarRequestsTable: avatarRequestsTable,
	}, nil
}
