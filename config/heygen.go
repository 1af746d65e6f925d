package config

import (
	"fmt"
	"os"
)

type HeyGenConfig struct {
	ApiUrl string
	ApiKey string
	// VoiceID and the voice/video settings mirror the payload the dashboard
	// always sent; overriding them per request is not supported.
	VoiceID         string
	VoiceStability  float64
	VoiceSimilarity float64
}

func GetHeyGenConfig() (*HeyGenConfig, error) {
	apiUrl := os.Getenv("HEYGEN_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("HEYGEN_API_URL must be set")
	}
	apiKey := os.Getenv("HEYGEN_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HEYGEN_API_KEY must be set")
	}
	voiceID := os.Getenv("HEYGEN_VOICE_ID")
	if voiceID == "" {
		voiceID = "en-US-JennyNeural"
	}

	return &HeyGenConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		VoiceID:         voiceID,
		VoiceStability:  0.5,
		VoiceSimilarity: 0.75,
	}, nil
}
