package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
)

// DryRunSink prints the snapshot table instead of posting it anywhere.
type DryRunSink struct {
	Output io.Writer
}

// NewDryRunSink creates a sink that writes to output.
func NewDryRunSink(output io.Writer) *DryRunSink {
	return &DryRunSink{Output: output}
}

// Append renders the snapshot as an aligned text table.
func (s *DryRunSink) Append(_ context.Context, snap *leaderboard.Snapshot) error {
	fmt.Fprintf(s.Output, "DRY RUN - would append %d rows:\n\n", len(snap.Rows))

	w := tabwriter.NewWriter(s.Output, 0, 4, 2, ' ', 0)
	for _, record := range snap.Records() {
		fmt.Fprintln(w, strings.Join(record, "\t"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
