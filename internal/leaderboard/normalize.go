package leaderboard

// Full-shape slice layout: each canonical column reads from one fixed offset.
const (
	posPlace = iota
	posPlayer
	posTotalUnder
	posThru
	posTodayUnder
	posRound1
	posRound2
	posRound3
	posRound4
	posTotalScore
)

// Normalize maps each row slice onto the canonical column set. Shape is
// detected per row from content: a slice containing an MC/WD status token is
// missed-cut shaped, everything else is full shape. Rank position plays no
// part in the decision.
func Normalize(slices []RowSlice) []RawRow {
	rows := make([]RawRow, 0, len(slices))
	for _, s := range slices {
		if hasStatusToken(s) {
			rows = append(rows, normalizeMissedCut(s))
		} else {
			rows = append(rows, normalizeFull(s))
		}
	}
	return rows
}

func hasStatusToken(s RowSlice) bool {
	for _, tok := range s.Tokens {
		if Classify(tok) == KindStatus {
			return true
		}
	}
	return false
}

func normalizeFull(s RowSlice) RawRow {
	return RawRow{
		Place:      s.Tokens[posPlace],
		Player:     s.Tokens[posPlayer],
		TotalUnder: s.Tokens[posTotalUnder],
		Thru:       s.Tokens[posThru],
		TodayUnder: s.Tokens[posTodayUnder],
		Round1:     s.Tokens[posRound1],
		Round2:     s.Tokens[posRound2],
		Round3:     s.Tokens[posRound3],
		Round4:     s.Tokens[posRound4],
		TotalScore: s.Tokens[posTotalScore],
	}
}

// normalizeMissedCut repairs the shortened row shape of a player who missed
// the cut or withdrew. Such rows carry only six real values: place, name,
// the status code, two round scores, and a total, packed into the front of
// the slice. The round scores land under the full-shape thru/today columns
// and the total under the first round column, so they are remapped to
// round1, round2 and total_score. Columns with no source value get the zero
// sentinel, keeping the row at exactly ten populated columns for coercion.
func normalizeMissedCut(s RowSlice) RawRow {
	return RawRow{
		Place:      s.Tokens[posPlace],
		Player:     s.Tokens[posPlayer],
		TotalUnder: zeroSentinel,
		Thru:       s.Tokens[posTotalUnder], // the MC/WD status code
		TodayUnder: zeroSentinel,
		Round1:     s.Tokens[posThru],
		Round2:     s.Tokens[posTodayUnder],
		Round3:     zeroSentinel,
		Round4:     zeroSentinel,
		TotalScore: s.Tokens[posRound1],
		MissedCut:  true,
	}
}
