// Package watch runs the polling loop around the parsing core.
//
// Each cycle fetches fresh page markup, runs the pure leaderboard pipeline
// on it, and hands the snapshot to the sink. The core stays free of clocks
// and I/O; cadence, the log-and-continue error policy, and the cooperative
// stop signal all live here.
package watch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/tour-leaderboard/internal/fetch"
	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/tour-leaderboard/internal/logger"
	"github.com/pfrederiksen/tour-leaderboard/internal/sink"
)

// Watcher drives the scrape/parse/append cycle on a fixed cadence.
type Watcher struct {
	source   fetch.Source
	sink     sink.Sink
	pipeline *leaderboard.Pipeline
	interval time.Duration
}

// New creates a Watcher.
func New(source fetch.Source, s sink.Sink, pipeline *leaderboard.Pipeline, interval time.Duration) *Watcher {
	return &Watcher{
		source:   source,
		sink:     s,
		pipeline: pipeline,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. The cadence is measured between cycle
// starts; a cycle that overruns it is followed back-to-back by the next one,
// never overlapped. Cycle errors are logged and the loop continues.
func (w *Watcher) Run(ctx context.Context) error {
	logger.Info("Watcher started", logger.Fields{"interval": w.interval.String()})

	for {
		start := time.Now()

		if _, err := w.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return w.stop(ctx)
			}
			logger.IncrCounter("cycles.failed")
		}

		select {
		case <-ctx.Done():
			return w.stop(ctx)
		case <-time.After(time.Until(start.Add(w.interval))):
		}
	}
}

func (w *Watcher) stop(ctx context.Context) error {
	logger.Info("Watcher stopped", logger.Fields{"metrics": logger.MetricsSnapshot()})
	return ctx.Err()
}

// RunOnce executes a single cycle: fetch, parse, append. The returned
// snapshot is what went to the sink; an empty board is skipped and returned
// without a sink call.
func (w *Watcher) RunOnce(ctx context.Context) (*leaderboard.Snapshot, error) {
	cycleID := uuid.NewString()
	fields := logger.Fields{"cycle_id": cycleID}

	fetchStart := time.Now()
	markup, err := w.source.Fetch(ctx)
	if err != nil {
		logger.Error("Fetching page failed", fields, err)
		return nil, err
	}
	logger.RecordTiming("fetch", time.Since(fetchStart))

	snap, err := w.pipeline.Run(markup, time.Now())
	if err != nil {
		logger.Error("Parsing leaderboard failed", fields, err)
		return nil, err
	}

	logger.SetGauge("snapshot.rows", float64(len(snap.Rows)))

	if len(snap.Rows) == 0 {
		// Nothing on the board yet; don't append a bare header
		logger.Info("Empty leaderboard, skipping append", fields)
		return snap, nil
	}

	if w.pipeline.UnderCut(snap) {
		logger.Warn("Fewer rows than cut line", logger.Fields{
			"cycle_id": cycleID,
			"rows":     len(snap.Rows),
			"cut_line": w.pipeline.CutLine,
		})
	}

	if err := w.sink.Append(ctx, snap); err != nil {
		logger.Error("Appending snapshot failed", fields, err)
		return nil, err
	}

	logger.IncrCounter("cycles.completed")
	logger.Info("Snapshot appended", logger.Fields{
		"cycle_id":     cycleID,
		"rows":         len(snap.Rows),
		"last_updated": snap.LastUpdated.Format(leaderboard.TimeFormat),
	})

	return snap, nil
}
