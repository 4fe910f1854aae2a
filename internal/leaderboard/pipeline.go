package leaderboard

import (
	"fmt"
	"strings"
	"time"
)

// Reference layout constants for the source page.
const (
	DefaultRowWidth = 10
	DefaultCutLine  = 52
	DefaultOffset   = -6 * time.Hour
)

// Pipeline runs one polling cycle's parsing stages as a pure function of
// page markup and a caller-supplied clock reading. It performs no I/O and
// holds no state across cycles.
type Pipeline struct {
	// Selector matches the elements carrying leaderboard cell text.
	Selector string
	// RowWidth is the number of tokens per reconstructed row.
	RowWidth int
	// CutLine is the expected number of full-shape rows. It no longer
	// drives normalization (shape is detected per row from content); the
	// scheduler uses it to flag snapshots that came up short.
	CutLine int
	// Offset is added to the capture time before stamping the snapshot.
	Offset time.Duration
}

// NewPipeline creates a Pipeline with the reference page's layout.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Selector: DefaultSelector,
		RowWidth: DefaultRowWidth,
		CutLine:  DefaultCutLine,
		Offset:   DefaultOffset,
	}
}

// Run reconstructs one leaderboard snapshot from page markup:
// tokenize, segment, normalize, coerce. A page with no player-name markers
// yields an empty snapshot, not an error.
func (p *Pipeline) Run(markup string, now time.Time) (*Snapshot, error) {
	tokens, err := ExtractTokens(strings.NewReader(markup), p.Selector)
	if err != nil {
		return nil, fmt.Errorf("extracting tokens: %w", err)
	}

	slices, err := Segment(tokens, p.RowWidth)
	if err != nil {
		return nil, fmt.Errorf("segmenting rows: %w", err)
	}

	snap, err := Coerce(Normalize(slices), now, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("coercing rows: %w", err)
	}

	return snap, nil
}

// UnderCut reports whether a snapshot holds fewer rows than the configured
// cut line. Early tournament rounds legitimately publish short boards, so
// this is a signal for the caller to log, not an error.
func (p *Pipeline) UnderCut(snap *Snapshot) bool {
	return p.CutLine > 0 && len(snap.Rows) < p.CutLine
}
