// Package sink persists finished leaderboard snapshots.
//
// The parsing core hands each cycle's snapshot to a Sink and forgets it; no
// history is kept in-process. SheetsSink appends to a Google Sheets
// spreadsheet; DryRunSink prints the table instead of posting, for local
// runs and tests. Sinks never retry: a failed append surfaces to the
// scheduler, which decides whether to log and continue.
package sink

import (
	"context"

	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
)

// Sink persists one leaderboard snapshot per polling cycle.
type Sink interface {
	Append(ctx context.Context, snap *leaderboard.Snapshot) error
}
