package api

import (
	"net/http"
	"strconv"

	"github.com/blub-trading/board-proxy/board"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// leaderboardResponse is the page payload served to the board UI
type leaderboardResponse struct {
	Data        []vl.DisplayRow  `json:"data"`
	Pagination  vl.Pagination    `json:"pagination"`
	Window      []board.PageItem `json:"window"`
	HasPrevious bool             `json:"has_previous"`
	HasNext     bool             `json:"has_next"`
}

// handleLeaderboard serves one leaderboard page. Query parameters mirror the
// trading API: page, limit, search, order_by and order_direction. order_by
// accepts either a UI column key or a trading API field name.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	state, err := s.queryStateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.leaderboardService.GetPage(r.Context(), state)
	if err != nil {
		http.Error(w, "Leaderboard temporarily unavailable", http.StatusBadGateway)
		return
	}

	// With an explicit sort the backend assigns authoritative ranks;
	// otherwise ranks follow row position within the pagination.
	rankSource := vl.RankFromPosition
	if state.Sort.Key != "" {
		rankSource = vl.RankFromServer
	}

	s.sendJSONResponse(w, leaderboardResponse{
		Data:        vl.ProjectPage(page, page.Pagination.Page, page.Pagination.Limit, rankSource),
		Pagination:  page.Pagination,
		Window:      board.WindowPages(page.Pagination.Page, page.Pagination.Pages),
		HasPrevious: board.HasPrevious(page.Pagination.Page),
		HasNext:     board.HasNext(page.Pagination.Page, page.Pagination.Pages),
	})
}

// queryStateFromRequest validates the request parameters and builds the
// upstream query state
func (s *Server) queryStateFromRequest(r *http.Request) (vl.QueryState, error) {
	state := vl.DefaultQueryState().WithLimit(s.config.Leaderboard.DefaultLimit)

	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return vl.QueryState{}, errBadParam("limit", raw)
		}
		if !s.config.Leaderboard.LimitAllowed(limit) {
			return vl.QueryState{}, errBadParam("limit", raw)
		}
		state = state.WithLimit(limit)
	}

	if search := query.Get("search"); search != "" {
		state = state.WithSearch(search)
	}

	orderBy := query.Get("order_by")
	orderDirection := getParamLowercase(r, "order_direction")
	if (orderBy == "") != (orderDirection == "") {
		return vl.QueryState{}, errBadParam("order_by/order_direction", "both required together")
	}
	if orderBy != "" {
		uiKey, err := sortKeyFromParam(orderBy)
		if err != nil {
			return vl.QueryState{}, errBadParam("order_by", orderBy)
		}

		direction, err := vl.DirectionFromAPIValue(orderDirection)
		if err != nil {
			return vl.QueryState{}, errBadParam("order_direction", orderDirection)
		}

		state.Sort = vl.SortState{Key: uiKey, Direction: direction}
	}

	// Page is applied last; filter transitions above would reset it
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return vl.QueryState{}, errBadParam("page", raw)
		}
		state = state.WithPage(page)
	}

	return state, nil
}

// sortKeyFromParam resolves an order_by parameter that may be spelled either
// as a UI column key (tradingScore) or a trading API field (trading_points)
func sortKeyFromParam(param string) (string, error) {
	if _, err := vl.APIFieldForUIKey(param); err == nil {
		return param, nil
	}
	return vl.UIKeyForAPIField(param)
}
