package usecases

import (
	"errors"
	"testing"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	payloads []string
	dest     string
	err      error
}

func (f *fakeSink) Write(payload string) (string, error) {
	f.payloads = append(f.payloads, payload)
	return f.dest, f.err
}

func curatedItem(id string) domain.ResultItem {
	return domain.ResultItem{ID: id, URL: domain.WatchURL(id)}
}

func TestCuratorAddDeduplicates(t *testing.T) {
	c := NewCurator(&fakeSink{}, nopLogger{})

	require.True(t, c.Add(curatedItem("abc")))
	require.False(t, c.Add(curatedItem("abc")))
	require.True(t, c.Add(curatedItem("xyz")))
	require.Equal(t, 2, c.Len())
	require.True(t, c.Contains("abc"))
}

func TestCuratorExportToSink(t *testing.T) {
	sink := &fakeSink{dest: "exports/curated_test.txt"}
	c := NewCurator(sink, nopLogger{})
	c.Add(curatedItem("abc"))
	c.Add(curatedItem("xyz"))

	dest, err := c.ExportToSink()
	require.NoError(t, err)
	require.Equal(t, "exports/curated_test.txt", dest)
	require.Equal(t,
		[]string{"https://www.youtube.com/watch?v=abc\nhttps://www.youtube.com/watch?v=xyz\n"},
		sink.payloads)

	require.Equal(t, 2, c.Len(), "exporting does not consume the list")
}

func TestCuratorExportToSinkPropagatesFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	c := NewCurator(sink, nopLogger{})
	c.Add(curatedItem("abc"))

	_, err := c.ExportToSink()
	require.ErrorContains(t, err, "disk full")
}
