package volumes_leaderboard

import (
	"fmt"
	"log"

	"github.com/blub-trading/board-proxy/amounts"
)

// RankSource says where a projected row's rank comes from. It is an explicit
// parameter: callers that request server-side ordering pass RankFromServer
// (the backend assigns authoritative ranks), everything else uses the row's
// position in the paginated result.
type RankSource int

const (
	RankFromPosition RankSource = iota
	RankFromServer
)

// ProjectPage shapes one page of raw records into display rows. pageIndex is
// 1-based; pageSize is the page's limit. The projection is pure: no network
// calls, no mutation of the input page.
func ProjectPage(page *PageEnvelope, pageIndex, pageSize int, source RankSource) []DisplayRow {
	if page == nil {
		return nil
	}

	rows := make([]DisplayRow, 0, len(page.Items))
	for i, record := range page.Items {
		rows = append(rows, projectRecord(&record, i, pageIndex, pageSize, source))
	}
	return rows
}

// ProjectRecords shapes an unpaginated record list (e.g. a per-wallet detail
// response); ranks are positional.
func ProjectRecords(records []RawVolumeRecord) []DisplayRow {
	rows := make([]DisplayRow, 0, len(records))
	for i, record := range records {
		rows = append(rows, projectRecord(&record, i, 1, len(records), RankFromPosition))
	}
	return rows
}

func projectRecord(record *RawVolumeRecord, i, pageIndex, pageSize int, source RankSource) DisplayRow {
	user := fmt.Sprintf("Anonymous %d", i+1)
	if record.Username != nil && *record.Username != "" {
		user = *record.Username
	}

	avatar := ""
	if record.ProfileImageURL != nil {
		avatar = *record.ProfileImageURL
	}

	rank := (pageIndex-1)*pageSize + i + 1
	if source == RankFromServer && record.Rank != nil {
		rank = *record.Rank
	}

	return DisplayRow{
		Rank:           rank,
		User:           user,
		Avatar:         avatar,
		TradingScore:   displayAmount(record.TradingPoints, amounts.TradingPointsDecimals, "trading_points"),
		BuyVolume:      displayAmount(record.VolumeIn, amounts.TokenDecimals, "volume_in"),
		SellVolume:     displayAmount(record.VolumeOut, amounts.TokenDecimals, "volume_out"),
		CurrentBalance: displayAmount(record.Balance, amounts.TokenDecimals, "balance"),
		NFTCounts:      record.NFTCounts,
	}
}

// displayAmount converts a base-unit amount string to its display float. A
// malformed amount must not take down the whole page: the field renders as a
// zero sentinel and the error is logged.
func displayAmount(rawAmount string, decimals int, field string) float64 {
	value, err := amounts.DisplayFloat(rawAmount, decimals)
	if err != nil {
		log.Printf("Projector: invalid %s amount %q: %v", field, rawAmount, err)
		return 0
	}
	return value
}
