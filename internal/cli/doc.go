// Package cli wires configuration, the page source, the snapshot sink and
// the watcher into the tour-leaderboard command.
//
// The default invocation runs the polling loop until interrupted. With
// --once it runs a single cycle and prints the snapshot as text or JSON;
// --dry-run swaps the Sheets sink for one that prints the table; and
// --from-file replays captured page markup instead of fetching.
package cli
