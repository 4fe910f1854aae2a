package leaderboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSelector matches the elements carrying leaderboard cell text on the
// source page.
const DefaultSelector = ".data"

// ExtractTokens parses page markup and returns the trimmed inner text of
// every element matching selector, in document order. Whitespace runs inside
// a cell collapse to a single space. An empty page yields an empty sequence,
// not an error.
func ExtractTokens(r io.Reader, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tokens := make([]string, 0)
	doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
		tokens = append(tokens, strings.Join(strings.Fields(sel.Text()), " "))
	})

	return tokens, nil
}
