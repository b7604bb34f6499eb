package e2etest

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// MockUpstream is a fake trading-volumes backend plus auth gateway. It serves
// canned wallet records with real pagination, search and ordering so the proxy
// can be exercised end to end without the production services.
type MockUpstream struct {
	server *httptest.Server

	mu      sync.RWMutex
	records []vl.RawVolumeRecord
	wallets map[string][]vl.RawVolumeRecord

	// Requests counts calls per path prefix
	Requests map[string]int
}

// NewMockUpstream creates a mock upstream preloaded with default data
func NewMockUpstream() *MockUpstream {
	m := &MockUpstream{
		records:  defaultLeaderboardRecords(),
		wallets:  defaultWalletRecords(),
		Requests: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/trading-volumes/", m.handleTradingVolumes)
	mux.HandleFunc("/auth/twitter/start", m.handleAuthStart)
	mux.HandleFunc("/auth/user", m.handleAuthUser)
	mux.HandleFunc("/auth/logout", m.handleAuthLogout)
	mux.HandleFunc("/api/wallet/link", m.handleWalletLink)

	m.server = httptest.NewServer(mux)
	return m
}

// URL returns the mock upstream base URL
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts the mock upstream down
func (m *MockUpstream) Close() {
	m.server.Close()
}

func (m *MockUpstream) count(path string) {
	m.mu.Lock()
	m.Requests[path]++
	m.mu.Unlock()
}

func (m *MockUpstream) handleTradingVolumes(w http.ResponseWriter, r *http.Request) {
	m.count("/api/trading-volumes/")

	// A trailing path segment is a wallet address
	suffix := strings.TrimPrefix(r.URL.Path, "/api/trading-volumes/")
	if suffix != "" {
		m.mu.RLock()
		records, ok := m.wallets[strings.ToLower(suffix)]
		m.mu.RUnlock()
		if !ok {
			http.Error(w, `{"detail": "wallet not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, records)
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	m.mu.RLock()
	filtered := filterRecords(m.records, query.Get("search"))
	m.mu.RUnlock()

	orderRecords(filtered, query.Get("order_by"), query.Get("order_direction"))

	total := len(filtered)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	writeJSON(w, vl.PageEnvelope{
		Items:      filtered[start:end],
		Pagination: vl.Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	})
}

func (m *MockUpstream) handleAuthStart(w http.ResponseWriter, r *http.Request) {
	m.count("/auth/twitter/start")
	writeJSON(w, map[string]string{"auth_url": "https://twitter.example/oauth?state=e2e"})
}

func (m *MockUpstream) handleAuthUser(w http.ResponseWriter, r *http.Request) {
	m.count("/auth/user")
	username := "whale_hunter"
	writeJSON(w, map[string]interface{}{
		"authenticated": true,
		"username":      username,
	})
}

func (m *MockUpstream) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	m.count("/auth/logout")
	w.WriteHeader(http.StatusNoContent)
}

func (m *MockUpstream) handleWalletLink(w http.ResponseWriter, r *http.Request) {
	m.count("/api/wallet/link")
	writeJSON(w, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func filterRecords(records []vl.RawVolumeRecord, search string) []vl.RawVolumeRecord {
	result := make([]vl.RawVolumeRecord, 0, len(records))
	needle := strings.ToLower(search)
	for _, record := range records {
		if needle == "" || (record.Username != nil && strings.Contains(strings.ToLower(*record.Username), needle)) {
			result = append(result, record)
		}
	}
	return result
}

func orderRecords(records []vl.RawVolumeRecord, orderBy, direction string) {
	if orderBy == "" {
		return
	}

	less := func(a, b vl.RawVolumeRecord) bool {
		if orderBy == "username" {
			return usernameOf(a) < usernameOf(b)
		}
		return amountOf(a, orderBy).Cmp(amountOf(b, orderBy)) < 0
	}

	sort.SliceStable(records, func(i, j int) bool {
		if direction == "desc" {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})

	for i := range records {
		rank := i + 1
		records[i].Rank = &rank
	}
}

func usernameOf(r vl.RawVolumeRecord) string {
	if r.Username != nil {
		return *r.Username
	}
	return ""
}

// amountOf parses the requested base-unit amount so ordering is numeric
// regardless of string width. Unparseable values sort as zero.
func amountOf(r vl.RawVolumeRecord, field string) *big.Int {
	var raw string
	switch field {
	case "balance":
		raw = r.Balance
	case "volume_in":
		raw = r.VolumeIn
	case "volume_out":
		raw = r.VolumeOut
	case "trading_points":
		raw = r.TradingPoints
	}

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return big.NewInt(0)
	}
	return value
}

func strRef(s string) *string { return &s }

func defaultLeaderboardRecords() []vl.RawVolumeRecord {
	names := []string{
		"whale_hunter", "degen_dave", "moon_girl", "paper_hands", "diamond_joe",
		"fomo_fred", "hodl_hanna", "ape_together", "rug_survivor", "gas_goblin",
		"exit_liquidity", "alpha_leak",
	}

	records := make([]vl.RawVolumeRecord, 0, len(names))
	for i, name := range names {
		level := strconv.Itoa(9 - (i % 9))
		records = append(records, vl.RawVolumeRecord{
			Username:      strRef(name),
			Balance:       level + "000000000000000000",
			VolumeIn:      level + "00000000000000000",
			VolumeOut:     level + "0000000000000000",
			TradingPoints: level + "00000000000000",
			NFTCounts:     &vl.NFTCounts{GoldNFT: i % 2, RingNFT: i % 3},
		})
	}
	return records
}

func defaultWalletRecords() map[string][]vl.RawVolumeRecord {
	return map[string][]vl.RawVolumeRecord{
		"0xabcdef0123456789abcdef0123456789abcdef01": {
			{
				Username:      strRef("whale_hunter"),
				Balance:       "9000000000000000000",
				VolumeIn:      "900000000000000000",
				VolumeOut:     "90000000000000000",
				TradingPoints: "900000000000000",
			},
		},
	}
}
