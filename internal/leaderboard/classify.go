package leaderboard

import "regexp"

// TokenKind tags a scraped text fragment by the role it plays in the
// leaderboard grid.
type TokenKind int

const (
	// KindOther covers everything the other kinds don't claim: tied-place
	// markers ("T3"), the finished marker ("F"), blanks, dashes.
	KindOther TokenKind = iota
	// KindName marks the start of a player's row.
	KindName
	// KindStatus is one of the reserved multi-letter status codes.
	KindStatus
	// KindScore is a plain signed integer or the "E" (even par) sentinel.
	KindScore
)

// statusCodes are the only multi-letter tokens that are not player names.
var statusCodes = map[string]bool{
	"MC": true, // missed cut
	"WD": true, // withdrawn
}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z]{2}`)
	scorePattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// Classify tags a single token. A token is a player-name marker when it
// begins with two or more alphabetic characters and is not a reserved status
// code: every other short field on the page ("T3", "F", "E", bare numbers) is
// at most one letter, so a multi-letter alphabetic prefix reliably marks a
// name. A real player name shorter than two characters, or a new status code
// appearing on the page, would be misclassified; both are accepted
// limitations of the source markup.
func Classify(token string) TokenKind {
	if statusCodes[token] {
		return KindStatus
	}
	if namePattern.MatchString(token) {
		return KindName
	}
	if token == evenSentinel || scorePattern.MatchString(token) {
		return KindScore
	}
	return KindOther
}
