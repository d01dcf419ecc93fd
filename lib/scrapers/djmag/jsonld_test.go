package djmag

import (
	"context"
	"testing"

	"djrank-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const livePage = `<!DOCTYPE html>
<html>
<head>
<title>Top 100 DJs</title>
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@graph": [
		{"@type": "WebPage", "name": "Top 100 DJs"},
		{
			"@type": "ItemList",
			"itemListElement": [
				{"@type": "ListItem", "position": 1, "url": "https://djmag.com/top100djs/2024/1/john-doe"},
				{"@type": "ListItem", "position": 2, "url": "https://djmag.com/top100djs/2023/2/jane-roe"},
				{"@type": "ListItem", "position": 3, "url": "https://djmag.com/top100djs/2024/3/martin-garrix"},
				{"@type": "ListItem", "position": 4},
				{"@type": "ListItem", "position": 5, "url": "https://djmag.com/top100djs/notayear/5/dj-z"},
				{"@type": "ListItem", "url": "https://djmag.com/top100djs/2024/6/dj-unranked"}
			]
		}
	]
}
</script>
</head>
<body></body>
</html>`

func TestExtractFromJSONLD(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:djmag")
	defer cleanup()

	rankings := ExtractFromJSONLD(context.Background(), livePage, 2024)
	require.Equal(t, []Ranking{
		{Year: 2024, Rank: 1, Name: "John Doe"},
		{Year: 2024, Rank: 3, Name: "Martin Garrix"},
	}, rankings)
}

func TestExtractFromJSONLDFiltersByYear(t *testing.T) {
	rankings := ExtractFromJSONLD(context.Background(), livePage, 2023)
	require.Equal(t, []Ranking{
		{Year: 2023, Rank: 2, Name: "Jane Roe"},
	}, rankings)
}

func TestExtractFromJSONLDNoScriptTag(t *testing.T) {
	page := `<html><body><p>nothing here</p></body></html>`
	require.Empty(t, ExtractFromJSONLD(context.Background(), page, 2024))
}

func TestExtractFromJSONLDUndecodable(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{not json</script></head></html>`
	require.Empty(t, ExtractFromJSONLD(context.Background(), page, 2024))
}

func TestExtractFromJSONLDNoItemList(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		{"@graph": [{"@type": "WebPage", "name": "Top 100 DJs"}]}
	</script></head></html>`
	require.Empty(t, ExtractFromJSONLD(context.Background(), page, 2024))
}
