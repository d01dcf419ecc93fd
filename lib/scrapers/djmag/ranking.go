package djmag

import "time"

// Ranking is one entry of a Top 100 DJs poll.
type Ranking struct {
	Year int
	Rank int
	Name string
}

// CurrentYear reports the latest poll year, which is assumed to be the
// wall-clock year at the start of a run.
func CurrentYear(now time.Time) int {
	return now.Year()
}
