package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/adapters"
)

func TestAdsMetricsService_Aggregate(t *testing.T) {
	insights := new(mockAdsInsights)
	service := NewAdsMetricsService(adapters.NewZerologWrapper(), insights)

	insights.On("FetchAccountInsights", mock.Anything, "token-1").Return([]outbound.AccountInsights{
		{
			AccountID:   "act_1",
			Spend:       100.50,
			Impressions: 10000,
			Clicks:      250,
			Conversions: 12,
			CTR:         2.5,
			CPC:         0.40,
			CPM:         10.05,
		},
		{
			AccountID:   "act_2",
			Spend:       49.50,
			Impressions: 5000,
			Clicks:      50,
			Conversions: 3,
			CTR:         1.0,
			CPC:         0.99,
			CPM:         9.90,
		},
	}, nil)

	metrics, err := service.Aggregate(context.Background(), "token-1")
	require.NoError(t, err)

	assert.InDelta(t, 150.0, metrics.Spend, 0.001)
	assert.Equal(t, int64(15000), metrics.Impressions)
	assert.Equal(t, int64(300), metrics.Clicks)
	assert.Equal(t, int64(15), metrics.Conversions)
	assert.InDelta(t, 1.75, metrics.CTR, 0.001)
	assert.InDelta(t, 0.695, metrics.CPC, 0.001)
	assert.InDelta(t, 9.975, metrics.CPM, 0.001)
}

func TestAdsMetricsService_AggregateNoAccounts(t *testing.T) {
	insights := new(mockAdsInsights)
	service := NewAdsMetricsService(adapters.NewZerologWrapper(), insights)

	insights.On("FetchAccountInsights", mock.Anything, "token-1").Return([]outbound.AccountInsights{}, nil)

	metrics, err := service.Aggregate(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Zero(t, metrics.Spend)
	assert.Zero(t, metrics.CTR)
}

func TestAdsMetricsService_AggregateMissingToken(t *testing.T) {
	insights := new(mockAdsInsights)
	service := NewAdsMetricsService(adapters.NewZerologWrapper(), insights)

	_, err := service.Aggregate(context.Background(), "")
	require.Error(t, err)
	insights.AssertNotCalled(t, "FetchAccountInsights", mock.Anything, mock.Anything)
}

func TestAdsMetricsService_AggregatePropagatesFetchError(t *testing.T) {
	insights := new(mockAdsInsights)
	service := NewAdsMetricsService(adapters.NewZerologWrapper(), insights)

	insights.On("FetchAccountInsights", mock.Anything, "token-1").
		Return(nil, errors.New("invalid oauth token"))

	_, err := service.Aggregate(context.Background(), "token-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid oauth token")
}
