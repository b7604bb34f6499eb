// Package board holds the page-level view logic of the leaderboard: the
// pagination window math, the debounce combinator for search input, and the
// controller that coordinates fetches against a single query state.
package board

// PageItem is one element of the pagination control row: either a concrete
// page number or an ellipsis placeholder between non-adjacent pages
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// WindowPages computes which page controls to render for the given position.
// It always keeps page 1 and the last page, keeps every page within one step
// of the current page, and collapses each gap into a single ellipsis. With one
// page or less there is nothing to paginate and the window is empty.
func WindowPages(currentPage, totalPages int) []PageItem {
	if totalPages <= 1 {
		return nil
	}

	var window []PageItem
	previousKept := 0

	for page := 1; page <= totalPages; page++ {
		if page != 1 && page != totalPages && abs(page-currentPage) >= 2 {
			continue
		}

		if previousKept != 0 && page-previousKept > 1 {
			window = append(window, PageItem{Ellipsis: true})
		}
		window = append(window, PageItem{Page: page})
		previousKept = page
	}

	return window
}

// HasPrevious reports whether the First/Previous controls are active
func HasPrevious(currentPage int) bool {
	return currentPage > 1
}

// HasNext reports whether the Next/Last controls are active
func HasNext(currentPage, totalPages int) bool {
	return currentPage < totalPages
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
