package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glabrego/feedview/internal/feed"
)

type fakeFetcher struct {
	feed feed.Feed
	err  error
}

func (f fakeFetcher) Fetch(context.Context, string) (feed.Feed, error) {
	if f.err != nil {
		return feed.Feed{}, f.err
	}
	return f.feed, nil
}

func TestLoad_ReturnsFeed(t *testing.T) {
	want := feed.Feed{Title: "Example", Entries: []feed.Entry{{Title: "One"}}}
	service := NewService(fakeFetcher{feed: want})

	got, err := service.Load(context.Background(), "https://example.com/feed.xml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.Title != "Example" || len(got.Entries) != 1 {
		t.Fatalf("unexpected feed: %+v", got)
	}
}

func TestLoad_WrapsFetchError(t *testing.T) {
	service := NewService(fakeFetcher{err: errors.New("boom")})

	_, err := service.Load(context.Background(), "https://example.com/feed.xml")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "load feed https://example.com/feed.xml") {
		t.Fatalf("expected wrapped context in error, got: %v", err)
	}
}
