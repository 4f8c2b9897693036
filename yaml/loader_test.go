package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/notebook/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	MaxPages   int      `default:"5"`
	RateLimit  float64  `default:"0"`
	DedupPages bool     `name:"dedup-pages"`
	Provider   string   `default:"gemini"`
	Headers    []string `name:"headers"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func parse(t *testing.T, args []string, paths ...string) *config {
	t.Helper()
	cfg := &config{}
	parser, err := kong.New(cfg,
		kong.Exit(func(int) {}),
		kong.Configuration(yaml.Loader, paths...),
	)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cfg
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("resolves flags by name", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max-pages: 3\nrate-limit: 1.5\ndedup-pages: true\nprovider: anthropic\n")

		cfg := parse(t, nil, path)

		assert.Equal(t, 3, cfg.MaxPages)
		assert.InDelta(t, 1.5, cfg.RateLimit, 0.0001)
		assert.True(t, cfg.DedupPages)
		assert.Equal(t, "anthropic", cfg.Provider)
	})

	t.Run("accepts underscored keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max_pages: 7\n")

		cfg := parse(t, nil, path)

		assert.Equal(t, 7, cfg.MaxPages)
	})

	t.Run("joins sequences", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "headers:\n  - a\n  - b\n")

		cfg := parse(t, nil, path)

		assert.Equal(t, []string{"a", "b"}, cfg.Headers)
	})

	t.Run("command line overrides file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max-pages: 3\n")

		cfg := parse(t, []string{"--max-pages=9"}, path)

		assert.Equal(t, 9, cfg.MaxPages)
	})

	t.Run("keeps defaults for an empty file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "")

		cfg := parse(t, nil, path)

		assert.Equal(t, 5, cfg.MaxPages)
		assert.Equal(t, "gemini", cfg.Provider)
	})

	t.Run("ignores missing files", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, nil, filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Equal(t, 5, cfg.MaxPages)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Loader(strings.NewReader("max-pages: [unclosed"))

		require.Error(t, err)
	})

	t.Run("rejects nested maps as flag values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "provider:\n  name: gemini\n")
		cfg := &config{}
		parser, err := kong.New(cfg,
			kong.Exit(func(int) {}),
			kong.Configuration(yaml.Loader, path),
		)
		require.NoError(t, err)

		_, err = parser.Parse(nil)

		require.Error(t, err)
	})
}
