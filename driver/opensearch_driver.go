package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OpenSearchDriver executes search requests against an OpenSearch-compatible
// engine over its JSON search API. It holds no per-request state and is safe
// for concurrent use.
type OpenSearchDriver struct {
	baseURL  string
	index    string
	username string
	password string
	client   *http.Client
}

func NewOpenSearchDriver(baseURL, index, username, password string, timeout time.Duration) *OpenSearchDriver {
	return &OpenSearchDriver{
		baseURL:  baseURL,
		index:    index,
		username: username,
		password: password,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type searchEnvelope struct {
	Hits struct {
		Hits []rawHit `json:"hits"`
	} `json:"hits"`
}

type rawHit struct {
	Score  *float64 `json:"_score"`
	Source struct {
		URL      string `json:"url"`
		Title    string `json:"title"`
		Text     string `json:"text"`
		Category string `json:"category"`
		Date     string `json:"date"`
	} `json:"_source"`
}

// Search posts the marshaled query body and returns the hits in engine
// order. Fewer hits than requested, or none, is a normal outcome.
func (d *OpenSearchDriver) Search(ctx context.Context, body []byte, size int) ([]SearchHit, error) {
	endpoint, err := url.JoinPath(d.baseURL, d.index, "_search")
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: "invalid base url: " + err.Error()}
	}
	endpoint += "?size=" + strconv.Itoa(size)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if d.username != "" {
		req.SetBasicAuth(d.username, d.password)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &DriverError{
			Op:  "Search",
			Err: fmt.Sprintf("engine returned status %d: %s", resp.StatusCode, snippet),
		}
	}

	var envelope searchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &DriverError{Op: "Search", Err: "decode response: " + err.Error()}
	}

	hits := make([]SearchHit, 0, len(envelope.Hits.Hits))
	for _, h := range envelope.Hits.Hits {
		score := 0.0
		if h.Score != nil {
			score = *h.Score
		}
		hits = append(hits, SearchHit{
			URL:      h.Source.URL,
			Title:    h.Source.Title,
			Text:     h.Source.Text,
			Category: h.Source.Category,
			Date:     h.Source.Date,
			Score:    score,
		})
	}
	return hits, nil
}
