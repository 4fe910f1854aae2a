package leaderboard

// RowSlice is one reconstructed row's window into the token sequence:
// exactly one row width of tokens, with the player-name marker at relative
// index 1 and the place field immediately before it.
type RowSlice struct {
	Start  int // index of the place field, inclusive
	End    int // index of the last field, inclusive
	Tokens []string
}

// Segment scans the token sequence for player-name markers and cuts one
// fixed-width slice per marker, in top-to-bottom leaderboard order. The row
// for a marker at index i spans [i-1, i+width-2].
//
// A sequence with no markers yields an empty result. A marker whose slice
// would start before the sequence, run past its end, or overlap the previous
// row's slice is a StructuralError: the reference page never produces these,
// so they indicate markup the heuristic cannot be trusted on.
func Segment(tokens []string, width int) ([]RowSlice, error) {
	slices := make([]RowSlice, 0)
	prevEnd := -1

	for i, tok := range tokens {
		if Classify(tok) != KindName {
			continue
		}

		start := i - 1
		end := i + width - 2

		if start < 0 {
			return nil, &StructuralError{Index: i, Reason: "name marker has no place field before it"}
		}
		if end >= len(tokens) {
			return nil, &StructuralError{Index: i, Reason: "row slice runs past the end of the token sequence"}
		}
		if start <= prevEnd {
			return nil, &StructuralError{Index: i, Reason: "row slice overlaps the previous row"}
		}

		slices = append(slices, RowSlice{Start: start, End: end, Tokens: tokens[start : end+1]})
		prevEnd = end
	}

	return slices, nil
}
