package djmag

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"djrank-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

var entryLinkPattern = regexp.MustCompile(`^/top100djs/(\d{4})/(\d{1,3})/.+$`)

// ExtractFromLinks recovers rankings for `year` from an archive page by
// matching anchor hrefs against the entry URL pattern. The same entry
// is usually linked more than once on a page (image + name), so matches
// are deduplicated by (rank, name). The result is sorted by ascending
// rank.
func ExtractFromLinks(ctx context.Context, page string, year int) []Ranking {
	ctx, span := tracer.Start(ctx, "ExtractFromLinks")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse document")
		return nil
	}

	type entry struct {
		rank int
		name string
	}
	seen := map[entry]struct{}{}

	for _, a := range htmlutil.GetAnchors(ctx, doc.Find("a")) {
		groups := entryLinkPattern.FindStringSubmatch(a.Href)
		if groups == nil {
			continue
		}
		linkYear, _ := strconv.Atoi(groups[1])
		if linkYear != year {
			continue
		}
		rank, _ := strconv.Atoi(groups[2])
		seen[entry{
			rank: rank,
			name: NameFromSlug(lastSegment(a.Href)),
		}] = struct{}{}
	}

	rankings := make([]Ranking, 0, len(seen))
	for e := range seen {
		rankings = append(rankings, Ranking{
			Year: year,
			Rank: e.rank,
			Name: e.name,
		})
	}
	slices.SortFunc(rankings, func(a, b Ranking) int {
		if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return rankings
}
