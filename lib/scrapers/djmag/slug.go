package djmag

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NameFromSlug turns the trailing path segment of an entry URL into a
// display name: percent-escapes decoded, hyphens become spaces, each
// word title-cased.
func NameFromSlug(slug string) string {
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		decoded = slug
	}
	return titleCaser.String(strings.ReplaceAll(decoded, "-", " "))
}

func lastSegment(raw string) string {
	idx := strings.LastIndex(raw, "/")
	return raw[idx+1:]
}

// yearFromURL pulls the poll year out of an entry URL. Entry URLs look
// like .../top100djs/<year>/<rank>/<slug>; the year is assumed to sit
// in the third-from-last slash-separated segment. If the site ever
// changes its URL layout this will start skipping entries.
func yearFromURL(raw string) (int, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 3 {
		return 0, fmt.Errorf("url %q has too few segments", raw)
	}
	year, err := strconv.Atoi(parts[len(parts)-3])
	if err != nil {
		return 0, fmt.Errorf("url %q has a non-numeric year segment", raw)
	}
	return year, nil
}
