package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PollerConfig struct {
	Interval time.Duration
}

func GetPollerConfig() (*PollerConfig, error) {
	interval := 10 * time.Second
	if raw := os.Getenv("POLL_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("POLL_INTERVAL_SECONDS must be a positive integer")
		}
		interval = time.Duration(seconds) * time.Second
	}

	return &PollerConfig{
		Interval: interval,
	}, nil
}
