package volumes_leaderboard

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/blub-trading/board-proxy/config"
)

// Direction is the UI-facing sort direction
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// APIValue returns the wire value for the order_direction parameter
func (d Direction) APIValue() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// DirectionFromAPIValue parses an order_direction wire value
func DirectionFromAPIValue(value string) (Direction, error) {
	switch value {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown order_direction %q", value)
	}
}

// uiToAPIField maps UI-facing column keys to trading API field names.
// The table is fixed; both directions must stay total and injective over the
// sortable set, which the inverse construction below enforces at startup.
var uiToAPIField = map[string]string{
	"rank":           "rank",
	"user":           "username",
	"avatar":         "profile_image_url",
	"tradingScore":   "trading_points",
	"buyVolume":      "volume_in",
	"sellVolume":     "volume_out",
	"currentBalance": "balance",
	"nftCounts":      "nft_counts",
}

var apiToUIField = func() map[string]string {
	inverse := make(map[string]string, len(uiToAPIField))
	for uiKey, apiField := range uiToAPIField {
		if other, exists := inverse[apiField]; exists {
			panic(fmt.Sprintf("sort field mapping not injective: %q and %q both map to %q",
				other, uiKey, apiField))
		}
		inverse[apiField] = uiKey
	}
	return inverse
}()

// APIFieldForUIKey translates a UI column key to its trading API field name.
// An unmapped key is an error, never a silently dropped sort parameter.
func APIFieldForUIKey(key string) (string, error) {
	apiField, ok := uiToAPIField[key]
	if !ok {
		return "", fmt.Errorf("unknown sort key %q", key)
	}
	return apiField, nil
}

// UIKeyForAPIField translates a trading API field name back to its UI column key
func UIKeyForAPIField(field string) (string, error) {
	uiKey, ok := apiToUIField[field]
	if !ok {
		return "", fmt.Errorf("unknown order_by field %q", field)
	}
	return uiKey, nil
}

// SortState is the current sort column and direction, in UI vocabulary.
// A zero Key means no explicit sort: the backend then orders by rank
// ascending, its default.
type SortState struct {
	Key       string
	Direction Direction
}

// QueryState is the immutable request state for one leaderboard page.
// Transitions return a new value; Page resets to 1 whenever search, limit or
// sort changes.
type QueryState struct {
	Page   int
	Limit  int
	Search string
	Sort   SortState
}

// DefaultQueryState returns the initial query state: first page, default page
// size, no filter, server-default order (rank ascending).
func DefaultQueryState() QueryState {
	return QueryState{
		Page:  1,
		Limit: config.DEFAULT_PAGE_LIMIT,
	}
}

// WithSearch returns the state with a new search filter. A changed filter
// resets pagination to the first page.
func (s QueryState) WithSearch(search string) QueryState {
	search = strings.TrimSpace(search)
	if search == s.Search {
		return s
	}
	s.Search = search
	s.Page = 1
	return s
}

// WithLimit returns the state with a new page size, back on the first page.
// The allowed-limits whitelist is enforced at the edges (handler, controller),
// not here.
func (s QueryState) WithLimit(limit int) QueryState {
	if limit == s.Limit {
		return s
	}
	s.Limit = limit
	s.Page = 1
	return s
}

// WithPage returns the state moved to the given page, clamped to >= 1
func (s QueryState) WithPage(page int) QueryState {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// WithSort applies the sort toggle for the given UI column key: requesting the
// currently-ascending column flips it to descending; any other column, or the
// same column while descending, resets to ascending. Sorting always returns to
// the first page.
func (s QueryState) WithSort(key string) QueryState {
	direction := Ascending
	if s.Sort.Key == key && s.Sort.Direction == Ascending {
		direction = Descending
	}
	s.Sort = SortState{Key: key, Direction: direction}
	s.Page = 1
	return s
}

// Values builds the trading API query parameters for this state. page and
// limit are always present; search only when non-empty; order_by and
// order_direction together or not at all.
func (s QueryState) Values() (url.Values, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(s.Page))
	values.Set("limit", strconv.Itoa(s.Limit))

	if search := strings.TrimSpace(s.Search); search != "" {
		values.Set("search", search)
	}

	if s.Sort.Key != "" {
		apiField, err := APIFieldForUIKey(s.Sort.Key)
		if err != nil {
			return nil, err
		}
		values.Set("order_by", apiField)
		values.Set("order_direction", s.Sort.Direction.APIValue())
	}

	return values, nil
}

// CacheKey returns the canonical cache key for this state
func (s QueryState) CacheKey() string {
	return fmt.Sprintf("leaderboard:%d:%d:%s:%s:%s",
		s.Page, s.Limit, strings.TrimSpace(s.Search), s.Sort.Key, s.Sort.Direction)
}
