// Package leaderboard reconstructs a tabular golf leaderboard from the flat
// sequence of text fragments scraped off a tournament results page.
//
// The page does not use table markup, so the package works from an ordered
// token stream: a classifier tags each token by role, a segmenter finds row
// boundaries using player-name detection and cuts fixed-width row slices, a
// normalizer maps each slice onto the canonical column set (repairing the
// shortened shape of players who missed the cut), and a coercion stage turns
// score columns into integers and stamps the snapshot with its capture time.
//
// The whole pipeline is a pure function of the page markup and a caller
// supplied clock reading. Fetching the page and persisting the snapshot are
// handled by the fetch and sink packages.
package leaderboard
