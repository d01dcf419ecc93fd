package rankstore

import "djrank-backend/lib/scrapers/djmag"

// MemStore keeps written rankings in memory, for tests.
type MemStore struct {
	Years            map[int][]djmag.Ranking
	Consolidated     []djmag.Ranking
	ConsolidatedSpan [2]int
	// when non-nil, every write fails with this error
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{Years: map[int][]djmag.Ranking{}}
}

func (s *MemStore) WriteYear(year int, records []djmag.Ranking) error {
	if s.Err != nil {
		return s.Err
	}
	s.Years[year] = records
	return nil
}

func (s *MemStore) WriteConsolidated(minYear, maxYear int, records []djmag.Ranking) error {
	if s.Err != nil {
		return s.Err
	}
	s.ConsolidatedSpan = [2]int{minYear, maxYear}
	s.Consolidated = records
	return nil
}
