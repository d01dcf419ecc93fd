package djmag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Outcome is the result of resolving one poll year. Err keeps transport
// and parse failures around for diagnostics, but callers decide fallback
// and failure accounting purely on whether any records came back.
type Outcome struct {
	Year    int
	Records []Ranking
	Err     error
}

func (o Outcome) Empty() bool {
	return len(o.Records) == 0
}

type strategy int

const (
	strategyStructuredData strategy = iota
	strategyPatternLinks
)

func (s strategy) String() string {
	switch s {
	case strategyStructuredData:
		return "structured_data"
	case strategyPatternLinks:
		return "pattern_links"
	}
	return "unknown"
}

// strategyOrder decides which extraction paths a year attempts, in
// order. Only the current poll year carries structured data on the live
// page; every other year is served from the archive, so it goes
// straight to link parsing.
func strategyOrder(year, currentYear int) []strategy {
	if year == currentYear {
		return []strategy{strategyStructuredData, strategyPatternLinks}
	}
	return []strategy{strategyPatternLinks}
}

type Resolver struct {
	fetcher     PageFetcher
	currentYear int
}

func NewResolver(fetcher PageFetcher, currentYear int) *Resolver {
	return &Resolver{
		fetcher:     fetcher,
		currentYear: currentYear,
	}
}

// ResolveYear tries each strategy for the year in order, falling
// through whenever a strategy produces zero records, and returns the
// first non-empty result.
func (r *Resolver) ResolveYear(ctx context.Context, year int) Outcome {
	ctx, span := tracer.Start(ctx, "ResolveYear", trace.WithAttributes(
		attribute.Int("year", year),
	))
	defer span.End()

	out := Outcome{Year: year}
	for _, s := range strategyOrder(year, r.currentYear) {
		records, err := r.attempt(ctx, s, year)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "extraction attempt failed", "year", year, "strategy", s.String(), "err", err)
			out.Err = errors.Join(out.Err, err)
			continue
		}
		if len(records) > 0 {
			slog.DebugContext(ctx, "resolved poll year", "year", year, "strategy", s.String(), "records", len(records))
			return Outcome{Year: year, Records: records}
		}
	}
	return out
}

func (r *Resolver) attempt(ctx context.Context, s strategy, year int) ([]Ranking, error) {
	switch s {
	case strategyStructuredData:
		page, err := r.fetcher.FetchPage(ctx, "/top100djs")
		if err != nil {
			return nil, err
		}
		return ExtractFromJSONLD(ctx, page, year), nil
	case strategyPatternLinks:
		page, err := r.fetcher.FetchPage(ctx, fmt.Sprintf("/top100djs/%d", year))
		if err != nil {
			return nil, err
		}
		return ExtractFromLinks(ctx, page, year), nil
	}
	return nil, fmt.Errorf("unknown strategy %d", s)
}
