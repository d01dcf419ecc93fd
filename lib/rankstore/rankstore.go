package rankstore

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"djrank-backend/lib/scrapers/djmag"
)

// Store persists resolved poll years. Implementations must tolerate
// being handed the same year twice (the later write wins).
type Store interface {
	WriteYear(year int, records []djmag.Ranking) error
	WriteConsolidated(minYear, maxYear int, records []djmag.Ranking) error
}

var csvHeader = []string{"Year", "Rank", "Name"}

// DirStore writes one CSV file per year plus one consolidated CSV into
// a single directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (DirStore, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return DirStore{}, fmt.Errorf("create output directory: %w", err)
	}
	return DirStore{dir: dir}, nil
}

func (s DirStore) WriteYear(year int, records []djmag.Ranking) error {
	return s.writeFile(fmt.Sprintf("%d.csv", year), records)
}

func (s DirStore) WriteConsolidated(minYear, maxYear int, records []djmag.Ranking) error {
	return s.writeFile(fmt.Sprintf("all (%d-%d).csv", minYear, maxYear), records)
}

func (s DirStore) writeFile(name string, records []djmag.Ranking) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	w.Write(csvHeader)
	for _, r := range records {
		w.Write([]string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Rank),
			r.Name,
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	slog.Info("wrote rankings file", "file", name, "records", len(records))
	return nil
}
