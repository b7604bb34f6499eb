package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoLoader(missingKeys []string) (map[string][]byte, error) {
	result := make(map[string][]byte)
	for _, key := range missingKeys {
		result[key] = []byte("loaded_" + key)
	}
	return result, nil
}

func TestService_GetOrLoad(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	// Empty cache: everything comes from the loader
	data, err := service.GetOrLoad([]string{"key1", "key2"}, echoLoader, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded_key1"), data["key1"])
	assert.Equal(t, []byte("loaded_key2"), data["key2"])

	// Second read is a full cache hit and must not call the loader
	data, err = service.GetOrLoad([]string{"key1", "key2"}, func(missingKeys []string) (map[string][]byte, error) {
		t.Fatalf("loader called for cached keys %v", missingKeys)
		return nil, nil
	}, 0)
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Equal(t, 2, service.ItemCount())
}

func TestService_GetOrLoad_PartialHitLoadsOnlyMissing(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	service.goCache.Set(map[string][]byte{"cached": []byte("cached_value")}, 0)

	var requested []string
	loader := func(missingKeys []string) (map[string][]byte, error) {
		requested = missingKeys
		return echoLoader(missingKeys)
	}

	data, err := service.GetOrLoad([]string{"cached", "missing1", "missing2"}, loader, 0)
	require.NoError(t, err)
	assert.Len(t, data, 3)
	assert.Equal(t, []byte("cached_value"), data["cached"])
	assert.Equal(t, []string{"missing1", "missing2"}, requested)

	assert.Equal(t, 3, service.ItemCount())
}

func TestService_GetOrLoad_TTLExpires(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	_, err := service.GetOrLoad([]string{"key1"}, echoLoader, 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	var called bool
	_, err = service.GetOrLoad([]string{"key1"}, func(missingKeys []string) (map[string][]byte, error) {
		called = true
		return echoLoader(missingKeys)
	}, 0)
	require.NoError(t, err)
	assert.True(t, called, "expired entry should be reloaded")
}

func TestService_GetOrLoad_LoaderError(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	data, err := service.GetOrLoad([]string{"key1"}, func(missingKeys []string) (map[string][]byte, error) {
		return nil, errors.New("loader failed")
	}, 0)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "failed to load data")
}

func TestService_GetOrLoad_EmptyKeys(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	data, err := service.GetOrLoad([]string{}, func(missingKeys []string) (map[string][]byte, error) {
		t.Fatal("loader should not be called for empty keys")
		return nil, nil
	}, 0)
	require.NoError(t, err)
	assert.Len(t, data, 0)
}

func TestService_ClearAndDelete(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	service.goCache.Set(map[string][]byte{
		"key1": []byte("value1"),
		"key2": []byte("value2"),
		"key3": []byte("value3"),
	}, 0)
	assert.Equal(t, 3, service.ItemCount())

	service.Delete([]string{"key1", "key3"})
	assert.Equal(t, 1, service.ItemCount())

	service.Clear()
	assert.Equal(t, 0, service.ItemCount())
}

func TestService_ImplementsCache(t *testing.T) {
	var c Cache = NewService(DefaultCacheConfig())

	data, err := c.GetOrLoad([]string{"test"}, echoLoader, 0)
	require.NoError(t, err)
	assert.Len(t, data, 1)
}
