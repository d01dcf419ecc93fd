package djmag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const archivePage2010 = `<!DOCTYPE html>
<html>
<body>
<a href="/top100djs/2010/5/dj-x"><img src="/images/dj-x.jpg"></a>
<a href="/top100djs/2010/5/dj-x">DJ X</a>
<a href="/top100djs/2010/1/armin-van-buuren">Armin van Buuren</a>
<a href="/top100djs/2010/9/p%C3%A9ggy-gou">Péggy Gou</a>
<a href="/top100djs/2011/1/dj-y">DJ Y</a>
<a href="/top100djs">All years</a>
<a href="/news/some-article">News</a>
<a>no href</a>
</body>
</html>`

func TestExtractFromLinks(t *testing.T) {
	rankings := ExtractFromLinks(context.Background(), archivePage2010, 2010)
	require.Equal(t, []Ranking{
		{Year: 2010, Rank: 1, Name: "Armin Van Buuren"},
		{Year: 2010, Rank: 5, Name: "Dj X"},
		{Year: 2010, Rank: 9, Name: "Péggy Gou"},
	}, rankings)
}

func TestExtractFromLinksDeduplicates(t *testing.T) {
	// dj-x is linked twice on the fixture page, once for the photo
	// and once for the name
	rankings := ExtractFromLinks(context.Background(), archivePage2010, 2010)
	count := 0
	for _, r := range rankings {
		if r.Rank == 5 {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestExtractFromLinksWrongYear(t *testing.T) {
	rankings := ExtractFromLinks(context.Background(), archivePage2010, 2012)
	require.Empty(t, rankings)
}

func TestExtractFromLinksNoAnchors(t *testing.T) {
	page := `<html><body><p>no links at all</p></body></html>`
	require.Empty(t, ExtractFromLinks(context.Background(), page, 2010))
}
