package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jfrancis347/personalised-video-2/config"
)

func newFacebookTestClient(serverURL string) *facebookInsightsClient {
	logger := NewZerologWrapper()
	client := NewFacebookInsightsClient(NewContentFetcher(logger), &config.FacebookConfig{
		GraphApiUrl: serverURL,
	}, logger)
	return client.(*facebookInsightsClient)
}

func TestFacebookInsightsClient_FetchAccountInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/adaccounts", r.URL.Path)
		require.Equal(t, insightsFields, r.URL.Query().Get("fields"))
		require.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		w.Write([]byte(`{
			"data": [
				{
					"account_id": "act_1",
					"name": "Main account",
					"insights": {"data": [{
						"spend": "100.50",
						"impressions": "10000",
						"clicks": "250",
						"actions": [
							{"action_type": "link_click", "value": "250"},
							{"action_type": "purchase", "value": "12"},
							{"action_type": "lead", "value": "99"}
						],
						"ctr": "2.5",
						"cpc": "0.40",
						"cpm": "10.05"
					}]}
				},
				{"account_id": "act_2", "name": "Empty account", "insights": {"data": []}}
			]
		}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	insights, err := client.FetchAccountInsights(context.Background(), "user-token")
	require.NoError(t, err)
	require.Len(t, insights, 2)

	first := insights[0]
	assert.Equal(t, "act_1", first.AccountID)
	assert.InDelta(t, 100.50, first.Spend, 0.001)
	assert.Equal(t, int64(10000), first.Impressions)
	assert.Equal(t, int64(250), first.Clicks)
	// First qualifying action wins: purchase before lead.
	assert.Equal(t, int64(12), first.Conversions)
	assert.InDelta(t, 2.5, first.CTR, 0.001)

	second := insights[1]
	assert.Equal(t, "act_2", second.AccountID)
	assert.Zero(t, second.Spend)
	assert.Zero(t, second.Conversions)
}

func TestFacebookInsightsClient_SurfacesGraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token."}}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	_, err := client.FetchAccountInsights(context.Background(), "bad-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token.")
}

func TestConversionsFromActions(t *testing.T) {
	assert.Equal(t, int64(0), conversionsFromActions(nil))
	assert.Equal(t, int64(7), conversionsFromActions([]facebookAction{
		{ActionType: "video_view", Value: "100"},
		{ActionType: "complete_registration", Value: "7"},
	}))
}
