package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestHTTPSourceFetch(t *testing.T) {
	const page = "<html><body><span class=\"data\">1</span></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("User-Agent = %q, expected %q", got, UserAgent)
		}
		w.Write([]byte(page))
	}))
	defer server.Close()

	markup, err := NewHTTPSource(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if markup != page {
		t.Errorf("unexpected markup: %q", markup)
	}
}

func TestHTTPSourceRetriesTransientFailure(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	markup, err := NewHTTPSource(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed after transient error: %v", err)
	}
	if markup != "ok" {
		t.Errorf("unexpected markup: %q", markup)
	}
	if hits.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", hits.Load())
	}
}

func TestHTTPSourcePersistentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewHTTPSource(server.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected an error for a persistently failing page")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}

	markup, err := (&FileSource{Path: path}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if markup != "<html></html>" {
		t.Errorf("unexpected markup: %q", markup)
	}

	if _, err := (&FileSource{Path: path + ".missing"}).Fetch(context.Background()); err == nil {
		t.Error("expected an error for a missing file")
	}
}
