package leaderboard

import (
	"strconv"
	"time"
)

// Coerce turns normalized string rows into typed rows and stamps the
// snapshot with the cycle's capture time shifted by offset (the downstream
// sheet lives in a different zone). Coercion is all-or-nothing: the first
// cell that fails to parse aborts the snapshot.
//
// total_under and today_under accept the "E" sentinel for an even relative
// score; it coerces to 0. The mapping is one-directional: a 0 never renders
// back to "E".
func Coerce(rows []RawRow, now time.Time, offset time.Duration) (*Snapshot, error) {
	snap := &Snapshot{
		Rows:        make([]Row, 0, len(rows)),
		LastUpdated: now.Add(offset),
	}

	for i, raw := range rows {
		row := Row{
			Place:     raw.Place,
			Player:    raw.Player,
			Thru:      raw.Thru,
			MissedCut: raw.MissedCut,
		}

		var err error
		if row.TotalUnder, err = relativeField(i, "total_under", raw.TotalUnder); err != nil {
			return nil, err
		}
		if row.TodayUnder, err = relativeField(i, "today_under", raw.TodayUnder); err != nil {
			return nil, err
		}
		if row.Round1, err = intField(i, "round1", raw.Round1); err != nil {
			return nil, err
		}
		if row.Round2, err = intField(i, "round2", raw.Round2); err != nil {
			return nil, err
		}
		if row.Round3, err = intField(i, "round3", raw.Round3); err != nil {
			return nil, err
		}
		if row.Round4, err = intField(i, "round4", raw.Round4); err != nil {
			return nil, err
		}
		if row.TotalScore, err = intField(i, "total_score", raw.TotalScore); err != nil {
			return nil, err
		}

		snap.Rows = append(snap.Rows, row)
	}

	return snap, nil
}

// relativeField parses a relative-to-par column, mapping the "E" sentinel
// to zero before parsing.
func relativeField(row int, field, value string) (int, error) {
	if value == evenSentinel {
		value = zeroSentinel
	}
	return intField(row, field, value)
}

func intField(row int, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Row: row, Field: field, Value: value}
	}
	return n, nil
}
