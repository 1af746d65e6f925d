package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/config"
)

const insightsFields = "account_id,name,insights.date_preset(last_30d){spend,impressions,clicks,actions,ctr,cpc,cpm,cost_per_action_type}"

type facebookAction struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type facebookInsightsData struct {
	Spend       string           `json:"spend"`
	Impressions string           `json:"impressions"`
	Clicks      string           `json:"clicks"`
	Actions     []facebookAction `json:"actions"`
	CTR         string           `json:"ctr"`
	CPC         string           `json:"cpc"`
	CPM         string           `json:"cpm"`
}

type facebookAdAccount struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Insights  struct {
		Data []facebookInsightsData `json:"data"`
	} `json:"insights"`
}

type facebookAdAccountsResponse struct {
	Data  []facebookAdAccount `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type facebookInsightsClient struct {
	ContentFetcher
	logger         outbound.LoggerPort
	facebookConfig *config.FacebookConfig
}

func NewFacebookInsightsClient(contentFetcher ContentFetcher, facebookConfig *config.FacebookConfig, logger outbound.LoggerPort) outbound.AdsInsightsPort {
	return &facebookInsightsClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		facebookConfig: facebookConfig,
	}
}

func (f *facebookInsightsClient) FetchAccountInsights(ctx context.Context, accessToken string) ([]outbound.AccountInsights, error) {
	url := fmt.Sprintf("%s/me/adaccounts?fields=%s", f.facebookConfig.GraphApiUrl, insightsFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+accessToken)

	res, err := f.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var accountsRes facebookAdAccountsResponse
	if err := json.Unmarshal(res.Body, &accountsRes); err != nil {
		f.logger.Error(err, "Failed to unmarshal the ad accounts response")
		return nil, err
	}

	if !res.OK() {
		if accountsRes.Error != nil && accountsRes.Error.Message != "" {
			return nil, fmt.Errorf("facebook API error: %s", accountsRes.Error.Message)
		}
		return nil, fmt.Errorf("failed to fetch Facebook Ads data: status %d", res.StatusCode)
	}

	insights := make([]outbound.AccountInsights, 0, len(accountsRes.Data))
	for _, account := range accountsRes.Data {
		entry := outbound.AccountInsights{
			AccountID: account.AccountID,
			Name:      account.Name,
		}
		if len(account.Insights.Data) > 0 {
			data := account.Insights.Data[0]
			entry.Spend = parseFloat(data.Spend)
			entry.Impressions = parseInt(data.Impressions)
			entry.Clicks = parseInt(data.Clicks)
			entry.Conversions = conversionsFromActions(data.Actions)
			entry.CTR = parseFloat(data.CTR)
			entry.CPC = parseFloat(data.CPC)
			entry.CPM = parseFloat(data.CPM)
		}
		insights = append(insights, entry)
	}

	return insights, nil
}

// conversionsFromActions picks the first conversion-like action, matching the
// dashboard's definition of a conversion.
func conversionsFromActions(actions []facebookAction) int64 {
	for _, action := range actions {
		switch action.ActionType {
		case "purchase", "complete_registration", "lead":
			return parseInt(action.Value)
		}
	}
	return 0
}

func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseInt(raw string) int64 {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
