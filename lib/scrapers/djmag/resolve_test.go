package djmag

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) FetchPage(ctx context.Context, path string) (string, error) {
	f.calls = append(f.calls, path)
	page, ok := f.pages[path]
	if !ok {
		return "", fmt.Errorf("fetch %s: unexpected status 404 Not Found", path)
	}
	return page, nil
}

const archivePage2024 = `<html><body>
<a href="/top100djs/2024/1/john-doe">John Doe</a>
<a href="/top100djs/2024/2/jane-roe">Jane Roe</a>
</body></html>`

func TestResolveYearCurrentUsesStructuredData(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"/top100djs": livePage,
	}}
	resolver := NewResolver(fetcher, 2024)

	out := resolver.ResolveYear(context.Background(), 2024)
	require.NoError(t, out.Err)
	require.Equal(t, []Ranking{
		{Year: 2024, Rank: 1, Name: "John Doe"},
		{Year: 2024, Rank: 3, Name: "Martin Garrix"},
	}, out.Records)
	require.Equal(t, []string{"/top100djs"}, fetcher.calls)
}

func TestResolveYearHistoricalSkipsStructuredData(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"/top100djs":      livePage,
		"/top100djs/2010": archivePage2010,
	}}
	resolver := NewResolver(fetcher, 2024)

	out := resolver.ResolveYear(context.Background(), 2010)
	require.False(t, out.Empty())
	// the live page must never be fetched for a historical year
	require.Equal(t, []string{"/top100djs/2010"}, fetcher.calls)
}

func TestResolveYearFallsBackOnEmptyStructuredData(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"/top100djs":      `<html><body><p>no structured data</p></body></html>`,
		"/top100djs/2024": archivePage2024,
	}}
	resolver := NewResolver(fetcher, 2024)

	out := resolver.ResolveYear(context.Background(), 2024)
	require.Equal(t, []Ranking{
		{Year: 2024, Rank: 1, Name: "John Doe"},
		{Year: 2024, Rank: 2, Name: "Jane Roe"},
	}, out.Records)
	require.Equal(t, []string{"/top100djs", "/top100djs/2024"}, fetcher.calls)
}

func TestResolveYearFallsBackOnFetchError(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"/top100djs/2024": archivePage2024,
	}}
	resolver := NewResolver(fetcher, 2024)

	out := resolver.ResolveYear(context.Background(), 2024)
	require.False(t, out.Empty())
	require.Equal(t, []string{"/top100djs", "/top100djs/2024"}, fetcher.calls)
}

func TestResolveYearKeepsErrorWhenAllStrategiesFail(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	resolver := NewResolver(fetcher, 2024)

	out := resolver.ResolveYear(context.Background(), 2024)
	require.True(t, out.Empty())
	require.Error(t, out.Err)
}

func TestStrategyOrder(t *testing.T) {
	require.Equal(t,
		[]strategy{strategyStructuredData, strategyPatternLinks},
		strategyOrder(2024, 2024),
	)
	require.Equal(t,
		[]strategy{strategyPatternLinks},
		strategyOrder(2010, 2024),
	)
}
