package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesPayload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewFileSink(dir)

	payload := "https://www.youtube.com/watch?v=abc\nhttps://www.youtube.com/watch?v=xyz\n"
	dest, err := sink.Write(payload)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(dest), "curated_"))
	require.True(t, strings.HasSuffix(dest, ".txt"))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, payload, string(written))
}

func TestFileSinkCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	sink := NewFileSink(dir)

	dest, err := sink.Write("")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(dest))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
