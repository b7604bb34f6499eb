package volumes_leaderboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blub-trading/board-proxy/config"
)

func testConfigWithURL(url string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.TradingAPIURL = url
	return cfg
}

func TestTradingAPIClient_FetchPage(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/trading-volumes/", r.URL.Path)

		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"username": "alice",
					"display_name": null,
					"profile_image_url": null,
					"balance": "1000000000000000000",
					"volume_in": "2000000000000000000",
					"volume_out": "500000000000000000",
					"trading_points": "1500000000000000",
					"transfer_count": 3,
					"rank": 1,
					"wallet_addresses": ["0x1111111111111111111111111111111111111111"]
				}
			],
			"pagination": {"page": 2, "limit": 25, "total": 120, "pages": 5}
		}`))
	}))
	defer server.Close()

	client := NewTradingAPIClient(testConfigWithURL(server.URL))

	state := DefaultQueryState().WithLimit(25).WithSort("tradingScore").WithPage(2)
	page, err := client.FetchPage(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "25", gotQuery["limit"])
	assert.Equal(t, "trading_points", gotQuery["order_by"])
	assert.Equal(t, "asc", gotQuery["order_direction"])
	_, hasSearch := gotQuery["search"]
	assert.False(t, hasSearch)

	require.Len(t, page.Items, 1)
	record := page.Items[0]
	require.NotNil(t, record.Username)
	assert.Equal(t, "alice", *record.Username)
	assert.Nil(t, record.DisplayName)
	assert.Equal(t, "1000000000000000000", record.Balance)
	require.NotNil(t, record.Rank)
	assert.Equal(t, 1, *record.Rank)
	assert.Equal(t, Pagination{Page: 2, Limit: 25, Total: 120, Pages: 5}, page.Pagination)

	assert.True(t, client.Healthy())
}

func TestTradingAPIClient_FetchPage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewTradingAPIClient(testConfigWithURL(server.URL))

	_, err := client.FetchPage(context.Background(), DefaultQueryState())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.False(t, client.Healthy())
}

func TestTradingAPIClient_FetchPage_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewTradingAPIClient(testConfigWithURL(server.URL))

	_, err := client.FetchPage(context.Background(), DefaultQueryState())
	assert.Error(t, err)
}

func TestTradingAPIClient_FetchPage_InvalidSortKey(t *testing.T) {
	client := NewTradingAPIClient(testConfigWithURL("http://localhost:1"))

	state := DefaultQueryState()
	state.Sort = SortState{Key: "nope", Direction: Ascending}

	_, err := client.FetchPage(context.Background(), state)
	assert.Error(t, err)
}
