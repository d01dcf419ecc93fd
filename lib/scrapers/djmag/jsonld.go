package djmag

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

type ldEntry struct {
	Position int    `json:"position"`
	Url      string `json:"url"`
}

type ldNode struct {
	Type            string    `json:"@type"`
	ItemListElement []ldEntry `json:"itemListElement"`
}

type ldDocument struct {
	Graph []ldNode `json:"@graph"`
}

// ExtractFromJSONLD pulls rankings for `year` out of the ld+json
// structured data block on the live poll page. Any condition that
// prevents extraction as a whole (no script tag, undecodable JSON, no
// ItemList in the graph) yields an empty result so the caller can fall
// back to link parsing; malformed individual entries are skipped.
func ExtractFromJSONLD(ctx context.Context, page string, year int) []Ranking {
	ctx, span := tracer.Start(ctx, "ExtractFromJSONLD")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse document")
		return nil
	}

	script := doc.Find(`script[type="application/ld+json"]`).First()
	if script.Length() == 0 {
		slog.WarnContext(ctx, "no ld+json script tag on page")
		return nil
	}

	var data ldDocument
	err = json.Unmarshal([]byte(script.Text()), &data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to unmarshal ld+json")
		slog.WarnContext(ctx, "failed to unmarshal ld+json", "err", err)
		return nil
	}

	var itemList *ldNode
	for i := range data.Graph {
		if data.Graph[i].Type == "ItemList" {
			itemList = &data.Graph[i]
			break
		}
	}
	if itemList == nil {
		slog.WarnContext(ctx, "no ItemList in ld+json graph")
		return nil
	}

	var rankings []Ranking
	for _, item := range itemList.ItemListElement {
		r, err := rankingFromEntry(item)
		if err != nil {
			slog.WarnContext(ctx, "skipping structured data entry", "url", item.Url, "err", err)
			continue
		}
		if r.Year != year {
			continue
		}
		rankings = append(rankings, r)
	}
	return rankings
}

func rankingFromEntry(item ldEntry) (Ranking, error) {
	if item.Url == "" {
		return Ranking{}, fmt.Errorf("entry has no url")
	}
	if item.Position <= 0 {
		return Ranking{}, fmt.Errorf("entry has a non-positive position")
	}
	year, err := yearFromURL(item.Url)
	if err != nil {
		return Ranking{}, err
	}
	return Ranking{
		Year: year,
		Rank: item.Position,
		Name: NameFromSlug(lastSegment(item.Url)),
	}, nil
}
