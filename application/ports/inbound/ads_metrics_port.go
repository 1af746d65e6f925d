package inbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type AdsMetricsPort interface {
	Aggregate(ctx context.Context, accessToken string) (*domain.AdsMetrics, error)
}
