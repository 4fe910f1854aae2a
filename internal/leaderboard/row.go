package leaderboard

import (
	"strconv"
	"time"
)

const (
	// evenSentinel is the page's notation for an even relative score.
	evenSentinel = "E"
	// zeroSentinel fills columns the missed-cut repair leaves without a
	// source value, so every row coerces to exactly ten columns.
	zeroSentinel = "0"

	// TimeFormat is how LastUpdated is rendered in persisted records.
	TimeFormat = "2006-01-02 15:04:05"
)

// Columns is the fixed output header, in sheet order.
var Columns = []string{
	"place", "player", "total_under", "thru", "today_under",
	"round1", "round2", "round3", "round4", "total_score", "last_updated",
}

// RawRow holds one reconstructed leaderboard row before type coercion.
// All fields are the page's text verbatim, except those the missed-cut
// repair filled with the zero sentinel.
type RawRow struct {
	Place      string
	Player     string
	TotalUnder string
	Thru       string
	TodayUnder string
	Round1     string
	Round2     string
	Round3     string
	Round4     string
	TotalScore string
	MissedCut  bool
}

// Row is a fully typed leaderboard row ready for persistence.
type Row struct {
	Place      string `json:"place"`
	Player     string `json:"player"`
	TotalUnder int    `json:"total_under"`
	Thru       string `json:"thru"`
	TodayUnder int    `json:"today_under"`
	Round1     int    `json:"round1"`
	Round2     int    `json:"round2"`
	Round3     int    `json:"round3"`
	Round4     int    `json:"round4"`
	TotalScore int    `json:"total_score"`
	MissedCut  bool   `json:"missed_cut,omitempty"`
}

// Snapshot is one polling cycle's leaderboard in rank order, stamped with
// the cycle's capture time. Immutable after creation; handed to the sink
// and discarded.
type Snapshot struct {
	Rows        []Row     `json:"rows"`
	LastUpdated time.Time `json:"last_updated"`
}

// Records renders the snapshot as a rectangular string table: the fixed
// column header followed by one record per row. The last_updated column
// carries the same timestamp on every row of a cycle.
func (s *Snapshot) Records() [][]string {
	ts := s.LastUpdated.Format(TimeFormat)
	records := make([][]string, 0, len(s.Rows)+1)
	records = append(records, Columns)
	for _, r := range s.Rows {
		records = append(records, []string{
			r.Place,
			r.Player,
			strconv.Itoa(r.TotalUnder),
			r.Thru,
			strconv.Itoa(r.TodayUnder),
			strconv.Itoa(r.Round1),
			strconv.Itoa(r.Round2),
			strconv.Itoa(r.Round3),
			strconv.Itoa(r.Round4),
			strconv.Itoa(r.TotalScore),
			ts,
		})
	}
	return records
}
