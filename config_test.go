package noted_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/afs/embed"
	"github.com/viant/noted"
	"github.com/viant/noted/codec"
)

//go:embed testdata/*
var embedFS embed.FS

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *noted.Config)
		expectErr   string
	}{
		{description: "defaults", mutate: func(c *noted.Config) {}},
		{description: "explicit format", mutate: func(c *noted.Config) { c.Store.Path = "notes.db"; c.Store.Format = "cbor" }},
		{description: "empty path", mutate: func(c *noted.Config) { c.Store.Path = "" }, expectErr: "store.path"},
		{description: "no extension", mutate: func(c *noted.Config) { c.Store.Path = "notes" }, expectErr: "store.format"},
		{description: "bad format", mutate: func(c *noted.Config) { c.Store.Format = "xml" }, expectErr: "store.format"},
		{description: "attempts", mutate: func(c *noted.Config) { c.ID.MaxAttempts = 0 }, expectErr: "id.maxAttempts"},
	}

	for _, testCase := range testCases {
		cfg := noted.DefaultConfig()
		testCase.mutate(cfg)
		err := cfg.Validate()
		if testCase.expectErr == "" {
			assert.NoError(t, err, testCase.description)
			continue
		}
		if assert.Error(t, err, testCase.description) {
			assert.Contains(t, err.Error(), testCase.expectErr, testCase.description)
		}
	}
	var nilConfig *noted.Config
	assert.NoError(t, nilConfig.Validate())
}

func TestConfig_StoreFormat(t *testing.T) {
	cfg := noted.DefaultConfig()
	format, err := cfg.StoreFormat()
	require.NoError(t, err)
	assert.Equal(t, codec.FormatMsgPack, format)
	assert.Equal(t, "notes.msgpack", cfg.Store.Path)

	cfg.Store.Format = "YAML"
	format, err = cfg.StoreFormat()
	require.NoError(t, err)
	assert.Equal(t, codec.FormatYAML, format)
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := noted.LoadConfig(ctx, "testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "notes.json", cfg.Store.Path)
	assert.Equal(t, 20, cfg.ID.MaxAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Tracing.Enabled)

	_, err = noted.LoadConfig(ctx, "testdata/invalid.yaml")
	assert.Error(t, err)

	_, err = noted.LoadConfig(ctx, "testdata/absent.yaml")
	assert.Error(t, err)

	embedded, err := noted.LoadConfig(ctx, "embed:///testdata/config.yaml", &embedFS)
	require.NoError(t, err)
	assert.Equal(t, cfg, embedded)
}
