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

const hubspotContactsBody = `{
	"results": [
		{"id": "101", "properties": {"firstname": "John", "lastname": "Smith", "email": "john@acme.com", "company": "Acme", "createdate": "2024-01-15T10:00:00Z"}},
		{"id": "102", "properties": {"firstname": "Jane", "email": "jane@globex.com"}}
	]
}`

func newHubSpotTestClient(serverURL string) *hubspotClient {
	logger := NewZerologWrapper()
	client := NewHubSpotClient(NewContentFetcher(logger), &config.HubSpotConfig{
		ApiUrl: serverURL,
		Token:  "pat-test",
	}, logger)
	return client.(*hubspotClient)
}

func TestHubSpotClient_ListContacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		require.Equal(t, contactProperties, r.URL.Query().Get("properties"))
		require.Equal(t, "Bearer pat-test", r.Header.Get("Authorization"))

		w.Write([]byte(hubspotContactsBody))
	}))
	defer server.Close()

	client := newHubSpotTestClient(server.URL)

	contacts, err := client.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, "101", contacts[0].ID)
	assert.Equal(t, "John", contacts[0].FirstName)
	assert.Equal(t, "Acme", contacts[0].Company)
	assert.Equal(t, "2024-01-15T10:00:00Z", contacts[0].CreatedAt)

	// Missing properties come back as empty strings.
	assert.Equal(t, "Jane", contacts[1].FirstName)
	assert.Empty(t, contacts[1].LastName)
	assert.Empty(t, contacts[1].Company)
}

func TestHubSpotClient_GetContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hubspotContactsBody))
	}))
	defer server.Close()

	client := newHubSpotTestClient(server.URL)

	contact, err := client.GetContact(context.Background(), "102")
	require.NoError(t, err)
	assert.Equal(t, "jane@globex.com", contact.Email)

	_, err = client.GetContact(context.Background(), "999")
	require.Error(t, err)
}

func TestHubSpotClient_ValidateToken(t *testing.T) {
	status := http.StatusOK
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := newHubSpotTestClient(server.URL)

	assert.True(t, client.ValidateToken(context.Background()))

	status = http.StatusUnauthorized
	assert.False(t, client.ValidateToken(context.Background()))
}
