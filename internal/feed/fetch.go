package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const maxFeedBody = 16 << 20

// Fetcher downloads and parses a single RSS/Atom feed.
type Fetcher struct {
	http      *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Fetcher{
		http:      httpClient,
		userAgent: "feedview/1.0 (+https://github.com/glabrego/feedview)",
	}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Feed{}, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.http.Do(req)
	if err != nil {
		return Feed{}, fmt.Errorf("fetch feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Feed{}, fmt.Errorf("fetch feed failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return Feed{}, fmt.Errorf("read feed body: %w", err)
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return Feed{}, fmt.Errorf("parse feed: %w", err)
	}
	return fromParsed(parsed), nil
}

func fromParsed(parsed *gofeed.Feed) Feed {
	out := Feed{
		Title:   strings.TrimSpace(parsed.Title),
		Entries: make([]Entry, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		out.Entries = append(out.Entries, Entry{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Summary:     strings.TrimSpace(item.Description),
			Content:     strings.TrimSpace(item.Content),
			Published:   strings.TrimSpace(item.Published),
			PublishedAt: item.PublishedParsed,
			Updated:     strings.TrimSpace(item.Updated),
			UpdatedAt:   item.UpdatedParsed,
		})
	}
	return out
}
