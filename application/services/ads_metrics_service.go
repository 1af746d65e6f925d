package services

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type adsMetricsService struct {
	logger   outbound.LoggerPort
	insights outbound.AdsInsightsPort
}

func NewAdsMetricsService(logger outbound.LoggerPort, insights outbound.AdsInsightsPort) inbound.AdsMetricsPort {
	return &adsMetricsService{
		logger:   logger,
		insights: insights,
	}
}

// Aggregate collapses per-account insights into one dashboard row: volume
// metrics are summed, rate metrics are averaged across accounts.
func (a *adsMetricsService) Aggregate(ctx context.Context, accessToken string) (*domain.AdsMetrics, error) {
	if accessToken == "" {
		return nil, domain.NewValidationError("access_token", "access token is required")
	}

	accounts, err := a.insights.FetchAccountInsights(ctx, accessToken)
	if err != nil {
		a.logger.Error(err, "failed to fetch ad account insights")
		return nil, err
	}

	metrics := &domain.AdsMetrics{}
	if len(accounts) == 0 {
		return metrics, nil
	}

	for _, account := range accounts {
		metrics.Spend += account.Spend
		metrics.Impressions += account.Impressions
		metrics.Clicks += account.Clicks
		metrics.Conversions += account.Conversions
		metrics.CTR += account.CTR
		metrics.CPC += account.CPC
		metrics.CPM += account.CPM
	}

	count := float64(len(accounts))
	metrics.CTR /= count
	metrics.CPC /= count
	metrics.CPM /= count

	a.logger.InfoWithFields("ads metrics aggregated", map[string]interface{}{
		"accounts": len(accounts),
	})

	return metrics, nil
}
