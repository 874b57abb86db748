package relay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher(t *testing.T) {
	t.Parallel()

	content := `{"bluff_success_rates": {"river": {"succ": 18, "total": 24}}}`
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	params, err := FileFetcher{Path: path}.Fetch(context.Background())
	require.NoError(t, err)

	rate, ok := params.BluffRate("river")
	require.True(t, ok)
	assert.InDelta(t, 75.0, rate, 0.001)
}

func TestFileFetcherMissingFile(t *testing.T) {
	t.Parallel()

	_, err := FileFetcher{Path: filepath.Join(t.TempDir(), "nope.json")}.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFileFetcherMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := FileFetcher{Path: path}.Fetch(context.Background())
	assert.Error(t, err)
}
