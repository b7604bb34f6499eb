package e2etest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

func recordWithBalance(username, balance string) vl.RawVolumeRecord {
	return vl.RawVolumeRecord{
		Username:      strRef(username),
		Balance:       balance,
		VolumeIn:      "0",
		VolumeOut:     "0",
		TradingPoints: "0",
	}
}

func TestOrderRecords_NumericNotLexicographic(t *testing.T) {
	// "10..." sorts before "9..." as a string but after it as a number
	records := []vl.RawVolumeRecord{
		recordWithBalance("nine", "9000000000000000000"),
		recordWithBalance("ten", "10000000000000000000"),
		recordWithBalance("two", "2000000000000000000"),
	}

	orderRecords(records, "balance", "desc")

	require.Len(t, records, 3)
	assert.Equal(t, "ten", *records[0].Username)
	assert.Equal(t, "nine", *records[1].Username)
	assert.Equal(t, "two", *records[2].Username)

	require.NotNil(t, records[0].Rank)
	assert.Equal(t, 1, *records[0].Rank)
	require.NotNil(t, records[2].Rank)
	assert.Equal(t, 3, *records[2].Rank)
}

func TestOrderRecords_UsernameAscending(t *testing.T) {
	records := []vl.RawVolumeRecord{
		recordWithBalance("zed", "1"),
		recordWithBalance("abe", "2"),
	}

	orderRecords(records, "username", "asc")

	assert.Equal(t, "abe", *records[0].Username)
	assert.Equal(t, "zed", *records[1].Username)
}
