package outbound

import "context"

// AccountInsights is the per-ad-account slice of the insights response.
type AccountInsights struct {
	AccountID   string
	Name        string
	Spend       float64
	Impressions int64
	Clicks      int64
	Conversions int64
	CTR         float64
	CPC         float64
	CPM         float64
}

// AdsInsightsPort fetches last-30-days insights for every ad account the
// presented access token can see.
type AdsInsightsPort interface {
	FetchAccountInsights(ctx context.Context, accessToken string) ([]AccountInsights, error)
}
