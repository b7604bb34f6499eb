package volumes_wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blub-trading/board-proxy/cache"
	"github.com/blub-trading/board-proxy/config"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
	mock_volumes_wallet "github.com/blub-trading/board-proxy/volumes_wallet/mocks"
)

const testWallet = "0xAbCdEf0123456789abcdef0123456789ABCDEF01"

func newTestService(t *testing.T) (*Service, *mock_volumes_wallet.MockAPIClient) {
	ctrl := gomock.NewController(t)
	client := mock_volumes_wallet.NewMockAPIClient(ctrl)

	cfg := config.DefaultConfig()
	cfg.Wallet.CacheTTL = time.Minute

	cacheService := cache.NewService(cache.DefaultCacheConfig())

	return NewService(cfg, cacheService, client), client
}

func walletRecords(usernames ...string) []vl.RawVolumeRecord {
	var records []vl.RawVolumeRecord
	for i := range usernames {
		username := usernames[i]
		records = append(records, vl.RawVolumeRecord{
			Username:      &username,
			Balance:       "1000000000000000000",
			VolumeIn:      "0",
			VolumeOut:     "0",
			TradingPoints: "0",
		})
	}
	return records
}

func TestService_GetWallet_CachesByAddress(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	client.EXPECT().
		FetchWallet(gomock.Any(), testWallet).
		Return(walletRecords("alice"), nil).
		Times(1)

	first, err := svc.GetWallet(ctx, testWallet)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.GetWallet(ctx, testWallet)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_GetWallet_AddressCasingSharesCacheEntry(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	// Only the first casing reaches the upstream
	client.EXPECT().
		FetchWallet(gomock.Any(), testWallet).
		Return(walletRecords("alice"), nil).
		Times(1)

	_, err := svc.GetWallet(ctx, testWallet)
	require.NoError(t, err)

	lowercased, err := svc.GetWallet(ctx, "0xabcdef0123456789abcdef0123456789abcdef01")
	require.NoError(t, err)
	require.Len(t, lowercased, 1)
	assert.Equal(t, "alice", *lowercased[0].Username)
}

func TestService_GetWallet_DistinctAddressesFetchSeparately(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	other := "0x1111111111111111111111111111111111111111"

	client.EXPECT().FetchWallet(gomock.Any(), testWallet).Return(walletRecords("alice"), nil)
	client.EXPECT().FetchWallet(gomock.Any(), other).Return(walletRecords("bob"), nil)

	first, err := svc.GetWallet(ctx, testWallet)
	require.NoError(t, err)
	second, err := svc.GetWallet(ctx, other)
	require.NoError(t, err)

	assert.Equal(t, "alice", *first[0].Username)
	assert.Equal(t, "bob", *second[0].Username)
}

func TestService_GetWallet_UpstreamError(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().
		FetchWallet(gomock.Any(), testWallet).
		Return(nil, errors.New("upstream down"))

	_, err := svc.GetWallet(context.Background(), testWallet)
	assert.Error(t, err)
}

func TestService_Healthy(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().Healthy().Return(true)
	assert.True(t, svc.Healthy())
}
