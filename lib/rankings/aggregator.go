package rankings

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"djrank-backend/lib/rankstore"
	"djrank-backend/lib/scrapers/djmag"
	"djrank-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("djrank.lib.rankings")

// DefaultStartYear is the first year the Top 100 DJs poll archive goes
// back to.
const DefaultStartYear = 2004

const maxEntriesPerYear = 100

type YearResolver interface {
	ResolveYear(ctx context.Context, year int) djmag.Outcome
}

type Aggregator struct {
	resolver  YearResolver
	store     rankstore.Store
	startYear int
	endYear   int
}

type Options struct {
	StartYear int
	EndYear   int
}

func NewAggregator(resolver YearResolver, store rankstore.Store, opts Options) *Aggregator {
	return &Aggregator{
		resolver:  resolver,
		store:     store,
		startYear: opts.StartYear,
		endYear:   opts.EndYear,
	}
}

type Summary struct {
	YearsResolved []int
	YearsFailed   []int
	Records       int
}

// Run resolves every year in [startYear, endYear] in order, writing
// each non-empty year to the store and collecting everything into one
// consolidated list written at the end. Failed years and failed writes
// are reported and skipped, they never abort the run. When no year
// yields anything the consolidated file is not written at all.
func (a *Aggregator) Run(ctx context.Context) Summary {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	var summary Summary
	var consolidated []djmag.Ranking

	for year := a.startYear; year <= a.endYear; year++ {
		slog.InfoContext(ctx, "resolving poll year", "year", year)

		out := a.resolver.ResolveYear(ctx, year)
		if out.Empty() {
			slog.WarnContext(ctx, "no rankings found for year", "year", year, "err", out.Err)
			summary.YearsFailed = append(summary.YearsFailed, year)
			continue
		}

		records := truncateTopRanks(out.Records, maxEntriesPerYear)
		err := a.store.WriteYear(year, records)
		if err != nil {
			slog.ErrorContext(ctx, "failed to write yearly rankings", "year", year, "err", err)
		}

		consolidated = append(consolidated, records...)
		summary.YearsResolved = append(summary.YearsResolved, year)
		summary.Records += len(records)
	}

	if len(consolidated) == 0 {
		slog.WarnContext(ctx, "no rankings scraped for any year")
		return summary
	}

	sortConsolidated(consolidated)
	minYear, maxYear := yearSpan(consolidated)
	err := a.store.WriteConsolidated(minYear, maxYear, consolidated)
	if err != nil {
		slog.ErrorContext(ctx, "failed to write consolidated rankings", "err", err)
	}

	return summary
}

// truncateTopRanks sorts by ascending rank and keeps at most n entries,
// so truncation always keeps the lowest numeric ranks.
func truncateTopRanks(records []djmag.Ranking, n int) []djmag.Ranking {
	slices.SortFunc(records, func(a, b djmag.Ranking) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	if len(records) > n {
		records = records[:n]
	}
	return records
}

// consolidated ordering: newest year first, ranks ascending within a year
func sortConsolidated(records []djmag.Ranking) {
	slices.SortFunc(records, func(a, b djmag.Ranking) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Rank, b.Rank)
	})
}

func yearSpan(records []djmag.Ranking) (int, int) {
	minYear := records[0].Year
	maxYear := records[0].Year
	for _, r := range records[1:] {
		minYear = min(minYear, r.Year)
		maxYear = max(maxYear, r.Year)
	}
	return minYear, maxYear
}
