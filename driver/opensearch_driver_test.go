package driver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOpenSearchDriverSearch(t *testing.T) {
	var gotPath, gotSize, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSize = r.URL.Query().Get("size")
		gotBody, _ = io.ReadAll(r.Body)
		if u, p, ok := r.BasicAuth(); ok {
			gotAuth = u + ":" + p
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hits": {"hits": [
				{"_score": 7.5, "_source": {"url": "https://a", "title": "Бензин", "text": "тело", "category": "news", "date": "2026-01-10"}},
				{"_score": null, "_source": {"url": "https://b", "title": "Шины"}}
			]}
		}`))
	}))
	defer srv.Close()

	d := NewOpenSearchDriver(srv.URL, "autonews", "admin", "secret", 5*time.Second)
	hits, err := d.Search(context.Background(), []byte(`{"query":{"match_none":{}}}`), 30)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotPath != "/autonews/_search" {
		t.Errorf("path = %q, want /autonews/_search", gotPath)
	}
	if gotSize != "30" {
		t.Errorf("size param = %q, want 30", gotSize)
	}
	if !json.Valid(gotBody) {
		t.Errorf("request body is not valid JSON: %s", gotBody)
	}
	if gotAuth != "admin:secret" {
		t.Errorf("basic auth = %q, want admin:secret", gotAuth)
	}

	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].URL != "https://a" || hits[0].Score != 7.5 || hits[0].Title != "Бензин" {
		t.Errorf("first hit = %+v", hits[0])
	}
	// A null _score reads as zero.
	if hits[1].Score != 0 {
		t.Errorf("null score read as %v, want 0", hits[1].Score)
	}
}

func TestOpenSearchDriverSearchEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"parsing_exception"}`))
	}))
	defer srv.Close()

	d := NewOpenSearchDriver(srv.URL, "autonews", "", "", 5*time.Second)
	_, err := d.Search(context.Background(), []byte(`{}`), 10)
	if err == nil {
		t.Fatal("expected error for status 400")
	}

	var de *DriverError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DriverError", err)
	}
	if !strings.Contains(de.Error(), "status 400") {
		t.Errorf("error = %q, want status in message", de.Error())
	}
	if !strings.Contains(de.Error(), "parsing_exception") {
		t.Errorf("error = %q, want body snippet in message", de.Error())
	}
}

func TestOpenSearchDriverSearchUnreachable(t *testing.T) {
	d := NewOpenSearchDriver("http://127.0.0.1:1", "autonews", "", "", 500*time.Millisecond)
	_, err := d.Search(context.Background(), []byte(`{}`), 10)
	if err == nil {
		t.Fatal("expected error for unreachable engine")
	}
}
