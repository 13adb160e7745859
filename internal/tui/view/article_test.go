package view

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/glabrego/feedview/internal/feed"
)

func TestArticleLines_MetaThenBody(t *testing.T) {
	published := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	entry := feed.Entry{
		Title:       "Post Title",
		Link:        "https://example.com/post",
		PublishedAt: &published,
	}
	lines := ArticleLines(entry, "Body paragraph with several words.", 40, "2006-01-02")

	if lines[0] != "Post Title" {
		t.Fatalf("expected title first, got %q", lines[0])
	}
	if lines[1] != strings.Repeat("=", len("Post Title")) {
		t.Fatalf("expected underline, got %q", lines[1])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Date: 2024-03-05") {
		t.Fatalf("expected date line, got:\n%s", joined)
	}
	if !strings.Contains(joined, "URL: https://example.com/post") {
		t.Fatalf("expected URL line, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Body paragraph") {
		t.Fatalf("expected body, got:\n%s", joined)
	}
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 40 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestArticleLines_Fallbacks(t *testing.T) {
	lines := ArticleLines(feed.Entry{}, "", 40, "2006-01-02")
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "No title") {
		t.Fatalf("expected title fallback, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Date: No date") {
		t.Fatalf("expected date fallback, got:\n%s", joined)
	}
	if !strings.Contains(joined, "No content available") {
		t.Fatalf("expected content fallback, got:\n%s", joined)
	}
}

func TestArticleLines_UnderlineCappedAtWidth(t *testing.T) {
	entry := feed.Entry{Title: strings.Repeat("long title ", 10)}
	lines := ArticleLines(entry, "body", 20, "2006-01-02")
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}
