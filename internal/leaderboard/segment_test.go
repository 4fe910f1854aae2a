package leaderboard

import (
	"errors"
	"testing"
)

func fullRow(place, name string) []string {
	return []string{place, name, "-4", "F", "-1", "68", "70", "71", "69", "278"}
}

func missedCutRow(name string) []string {
	return []string{"-", name, "MC", "74", "73", "147", "-", "-", "-", "-"}
}

func TestSegment(t *testing.T) {
	var tokens []string
	tokens = append(tokens, fullRow("1", "Scheffler")...)
	tokens = append(tokens, fullRow("2", "McIlroy")...)
	tokens = append(tokens, missedCutRow("Hovland")...)

	slices, err := Segment(tokens, DefaultRowWidth)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(slices) != 3 {
		t.Fatalf("expected 3 row slices, got %d", len(slices))
	}

	for i, s := range slices {
		if len(s.Tokens) != DefaultRowWidth {
			t.Errorf("slice %d: expected %d tokens, got %d", i, DefaultRowWidth, len(s.Tokens))
		}
		if Classify(s.Tokens[1]) != KindName {
			t.Errorf("slice %d: expected a name marker at relative index 1, got %q", i, s.Tokens[1])
		}
		if s.End-s.Start+1 != DefaultRowWidth {
			t.Errorf("slice %d: bounds [%d, %d] don't span the row width", i, s.Start, s.End)
		}
	}

	if slices[0].Tokens[1] != "Scheffler" || slices[1].Tokens[1] != "McIlroy" || slices[2].Tokens[1] != "Hovland" {
		t.Errorf("slices out of leaderboard order: %q, %q, %q",
			slices[0].Tokens[1], slices[1].Tokens[1], slices[2].Tokens[1])
	}
}

func TestSegmentMarkerCount(t *testing.T) {
	// K markers spaced a full row width apart yield exactly K slices.
	names := []string{"Scheffler", "McIlroy", "Rahm", "Schauffele", "Fleetwood"}

	var tokens []string
	for i, name := range names {
		tokens = append(tokens, fullRow(string(rune('1'+i)), name)...)
	}

	slices, err := Segment(tokens, DefaultRowWidth)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(slices) != len(names) {
		t.Errorf("expected %d slices for %d markers, got %d", len(names), len(names), len(slices))
	}
}

func TestSegmentNoMarkers(t *testing.T) {
	tokens := []string{"1", "2", "3", "E", "-4", "F", "T3"}

	slices, err := Segment(tokens, DefaultRowWidth)
	if err != nil {
		t.Fatalf("expected no error for a marker-free sequence, got: %v", err)
	}
	if len(slices) != 0 {
		t.Errorf("expected 0 slices, got %d", len(slices))
	}
}

func TestSegmentStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{
			name:   "marker at start of sequence",
			tokens: append([]string{"Scheffler"}, fullRow("1", "McIlroy")[2:]...),
		},
		{
			name:   "slice past end of sequence",
			tokens: []string{"1", "Scheffler", "-4", "F"},
		},
		{
			name: "overlapping rows",
			tokens: append(
				[]string{"1", "Scheffler", "-4", "F", "-1", "68"},
				fullRow("2", "McIlroy")...,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Segment(tt.tokens, DefaultRowWidth)
			if err == nil {
				t.Fatal("expected a StructuralError, got nil")
			}
			var structural *StructuralError
			if !errors.As(err, &structural) {
				t.Fatalf("expected a StructuralError, got %T: %v", err, err)
			}
		})
	}
}
