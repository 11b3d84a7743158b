package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodash/price-proxy/config"
)

func newTestService() *Service {
	return NewService(config.DefaultCacheConfig())
}

func TestService_StartStop(t *testing.T) {
	service := newTestService()

	require.NoError(t, service.Start(context.Background()))

	require.NoError(t, service.Set(map[string][]byte{"key": []byte("value")}, 0))
	assert.Equal(t, 1, service.ItemCount())

	service.Stop()
	assert.Equal(t, 0, service.ItemCount())
}

func TestService_GetOrLoad_Hit(t *testing.T) {
	service := newTestService()

	loaderCalls := 0
	loader := func(missingKeys []string) (map[string][]byte, error) {
		loaderCalls++
		result := make(map[string][]byte)
		for _, key := range missingKeys {
			result[key] = []byte("loaded:" + key)
		}
		return result, nil
	}

	// Cold cache: loader runs once
	data, err := service.GetOrLoad([]string{"top_list"}, loader, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded:top_list"), data["top_list"])
	assert.Equal(t, 1, loaderCalls)

	// Within TTL: served from cache, loader not invoked again
	data, err = service.GetOrLoad([]string{"top_list"}, loader, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded:top_list"), data["top_list"])
	assert.Equal(t, 1, loaderCalls)
}

func TestService_GetOrLoad_Expiry(t *testing.T) {
	service := newTestService()

	loaderCalls := 0
	loader := func(missingKeys []string) (map[string][]byte, error) {
		loaderCalls++
		return map[string][]byte{"coin:bitcoin": []byte("data")}, nil
	}

	_, err := service.GetOrLoad([]string{"coin:bitcoin"}, loader, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, loaderCalls)

	time.Sleep(50 * time.Millisecond)

	// Expired entry triggers a re-fetch
	_, err = service.GetOrLoad([]string{"coin:bitcoin"}, loader, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, loaderCalls)
}

func TestService_GetOrLoad_LoaderErrorCachesNothing(t *testing.T) {
	service := newTestService()

	loaderErr := errors.New("upstream unavailable")
	failingLoader := func(missingKeys []string) (map[string][]byte, error) {
		return nil, loaderErr
	}

	_, err := service.GetOrLoad([]string{"top_list"}, failingLoader, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, loaderErr)

	// No negative caching: the failed key is still missing
	found, missing, err := service.Get([]string{"top_list"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, []string{"top_list"}, missing)
}

func TestService_GetOrLoad_OnlyMissingKeysLoaded(t *testing.T) {
	service := newTestService()

	require.NoError(t, service.Set(map[string][]byte{"cached": []byte("old")}, time.Minute))

	var loadedKeys []string
	loader := func(missingKeys []string) (map[string][]byte, error) {
		loadedKeys = missingKeys
		return map[string][]byte{"missing": []byte("new")}, nil
	}

	data, err := service.GetOrLoad([]string{"cached", "missing"}, loader, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"missing"}, loadedKeys)
	assert.Equal(t, []byte("old"), data["cached"])
	assert.Equal(t, []byte("new"), data["missing"])
}

func TestService_GetOrLoad_EmptyKeys(t *testing.T) {
	service := newTestService()

	data, err := service.GetOrLoad(nil, func([]string) (map[string][]byte, error) {
		t.Fatal("loader must not be called for empty keys")
		return nil, nil
	}, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, data)
}
