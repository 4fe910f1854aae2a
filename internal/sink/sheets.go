package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
)

const (
	sheetsAPIBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	sheetsTimeout    = 15 * time.Second
)

// SheetsSink appends snapshots to a named sheet in a Google Sheets
// spreadsheet via the values:append endpoint. Each cycle writes the fixed
// column header followed by one record per player, so consecutive snapshots
// stack up in the sheet with a visible boundary.
type SheetsSink struct {
	spreadsheetID string
	sheetName     string
	token         string
	baseURL       string
	httpClient    *http.Client
}

// NewSheetsSink creates a sink for the given destination document.
func NewSheetsSink(spreadsheetID, sheetName, token string) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}
	if sheetName == "" {
		return nil, fmt.Errorf("sheet name is required")
	}
	if token == "" {
		return nil, fmt.Errorf("Sheets API token is required")
	}

	return &SheetsSink{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		token:         token,
		baseURL:       sheetsAPIBaseURL,
		httpClient:    &http.Client{Timeout: sheetsTimeout},
	}, nil
}

// Append posts the snapshot to the spreadsheet. No retry: failures surface
// to the caller.
func (s *SheetsSink) Append(ctx context.Context, snap *leaderboard.Snapshot) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=RAW",
		s.baseURL, s.spreadsheetID, url.PathEscape(s.sheetName))

	payload := map[string]interface{}{
		"values": snap.Records(),
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("appending snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Don't include the response body in the error to avoid leaking
		// spreadsheet contents into logs
		return fmt.Errorf("Sheets API error (status %d)", resp.StatusCode)
	}

	return nil
}
