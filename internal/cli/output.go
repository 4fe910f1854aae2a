package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
)

// OutputFormat specifies how a snapshot is rendered for --once runs.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the snapshot in the specified format
func WriteOutput(w io.Writer, snap *leaderboard.Snapshot, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, snap)
	case FormatText:
		return writeText(w, snap)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, snap *leaderboard.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}

func writeText(w io.Writer, snap *leaderboard.Snapshot) error {
	if len(snap.Rows) == 0 {
		fmt.Fprintln(w, "No leaderboard rows found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, record := range snap.Records() {
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d rows as of %s\n", len(snap.Rows), snap.LastUpdated.Format(leaderboard.TimeFormat))
	return nil
}
