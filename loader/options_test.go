package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptionsDefaults(t *testing.T) {
	cfg, err := applyOptions()
	require.NoError(t, err)

	assert.Equal(t, DefaultLang, cfg.lang)
	assert.Empty(t, cfg.providers)
	assert.Equal(t, DefaultMaxDocuments, cfg.maxDocuments)
	assert.IsType(t, NopLogger{}, cfg.logger)
}

func TestWithLangCanonicalizes(t *testing.T) {
	cfg, err := applyOptions(WithLang("fr-fr"))
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.lang)
}

func TestWithLangInvalid(t *testing.T) {
	_, err := applyOptions(WithLang("!!"))
	require.Error(t, err)
}

func TestWithProviderValidation(t *testing.T) {
	t.Run("empty scheme", func(t *testing.T) {
		_, err := applyOptions(WithProvider("", ProviderFunc(nil)))
		require.Error(t, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := applyOptions(WithProvider("test", nil))
		require.Error(t, err)
	})

	t.Run("scheme lowercased", func(t *testing.T) {
		p := ProviderFunc(func(context.Context, string, FetchOptions) (any, error) {
			return nil, nil
		})
		cfg, err := applyOptions(WithProvider("HTTP", p))
		require.NoError(t, err)
		_, ok := cfg.providers["http"]
		assert.True(t, ok)
	})
}

func TestWithProvidersMerges(t *testing.T) {
	p := ProviderFunc(func(context.Context, string, FetchOptions) (any, error) {
		return nil, nil
	})
	cfg, err := applyOptions(
		WithProvider("file", p),
		WithProviders(map[string]Provider{"http": p, "https": p}),
	)
	require.NoError(t, err)
	assert.Len(t, cfg.providers, 3)
}

func TestWithHeaderAndExtra(t *testing.T) {
	cfg, err := applyOptions(
		WithHeader("Authorization", "Bearer token"),
		WithExtra("tenant", "acme"),
	)
	require.NoError(t, err)

	opts := cfg.fetchOptions()
	assert.Equal(t, "Bearer token", opts.Header["Authorization"])
	assert.Equal(t, "acme", opts.Extra["tenant"])
	assert.NotEmpty(t, opts.UserAgent)
}

func TestWithUserAgent(t *testing.T) {
	cfg, err := applyOptions(WithUserAgent("custom/1.0"))
	require.NoError(t, err)
	assert.Equal(t, "custom/1.0", cfg.fetchOptions().UserAgent)

	_, err = applyOptions(WithUserAgent(""))
	require.Error(t, err)
}

func TestNilOptionIgnored(t *testing.T) {
	cfg, err := applyOptions(nil, WithLang("en-US"))
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.lang)
}
