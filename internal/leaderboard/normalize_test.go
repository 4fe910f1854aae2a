package leaderboard

import "testing"

func TestNormalizeFullShape(t *testing.T) {
	slices := []RowSlice{{
		Start:  0,
		End:    9,
		Tokens: []string{"T3", "Rahm", "-10", "F", "E", "70", "68", "66", "70", "274"},
	}}

	rows := Normalize(slices)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.MissedCut {
		t.Error("full-shape row misdetected as missed-cut")
	}

	expected := RawRow{
		Place:      "T3",
		Player:     "Rahm",
		TotalUnder: "-10",
		Thru:       "F",
		TodayUnder: "E",
		Round1:     "70",
		Round2:     "68",
		Round3:     "66",
		Round4:     "70",
		TotalScore: "274",
	}
	if row != expected {
		t.Errorf("full-shape row mismatch:\ngot      %+v\nexpected %+v", row, expected)
	}
}

func TestNormalizeMissedCutRemap(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"missed cut", "MC"},
		{"withdrawn", "WD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := []RowSlice{{
				Start:  0,
				End:    9,
				Tokens: []string{"-", "Hovland", tt.status, "74", "73", "147", "-", "-", "-", "-"},
			}}

			rows := Normalize(slices)
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}

			row := rows[0]
			if !row.MissedCut {
				t.Fatalf("row with %s status not detected as missed-cut", tt.status)
			}

			// The two recorded rounds and the total sit under the
			// full-shape thru/today/round1 offsets and get remapped.
			if row.Round1 != "74" {
				t.Errorf("round1 = %q, expected the value from the thru offset", row.Round1)
			}
			if row.Round2 != "73" {
				t.Errorf("round2 = %q, expected the value from the today offset", row.Round2)
			}
			if row.TotalScore != "147" {
				t.Errorf("total_score = %q, expected the value from the round1 offset", row.TotalScore)
			}
			if row.Thru != tt.status {
				t.Errorf("thru = %q, expected the status code %q", row.Thru, tt.status)
			}

			// Columns with no source value fall back to the zero sentinel.
			for field, value := range map[string]string{
				"total_under": row.TotalUnder,
				"today_under": row.TodayUnder,
				"round3":      row.Round3,
				"round4":      row.Round4,
			} {
				if value != "0" {
					t.Errorf("%s = %q, expected the zero sentinel", field, value)
				}
			}
		})
	}
}

func TestNormalizeMixedShapes(t *testing.T) {
	slices := []RowSlice{
		{Tokens: []string{"1", "Scheffler", "-14", "F", "-4", "68", "66", "65", "71", "270"}},
		{Tokens: []string{"-", "Morikawa", "WD", "75", "76", "151", "-", "-", "-", "-"}},
		{Tokens: []string{"2", "McIlroy", "-12", "F", "-3", "69", "67", "66", "70", "272"}},
	}

	rows := Normalize(slices)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].MissedCut || rows[2].MissedCut {
		t.Error("full-shape rows misdetected as missed-cut")
	}
	if !rows[1].MissedCut {
		t.Error("shape detection must follow row content, not rank position")
	}
}
