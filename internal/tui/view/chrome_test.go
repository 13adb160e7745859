package view

import (
	"strings"
	"testing"

	tuitheme "github.com/glabrego/feedview/internal/tui/theme"
)

func TestHeader(t *testing.T) {
	got := stripANSI(Header("Example Blog", 12, tuitheme.Default()))
	if !strings.Contains(got, "Example Blog") || !strings.Contains(got, "(12 entries)") {
		t.Fatalf("unexpected header: %q", got)
	}
	empty := stripANSI(Header("  ", 0, tuitheme.Default()))
	if !strings.Contains(empty, "No title") {
		t.Fatalf("expected title fallback, got %q", empty)
	}
}

func TestListFooter(t *testing.T) {
	th := tuitheme.Default()
	got := stripANSI(ListFooter(1, 4, 37, "", th))
	if !strings.Contains(got, "2 of 4") {
		t.Fatalf("expected one-based page label, got %q", got)
	}
	if !strings.Contains(got, "37 entries") {
		t.Fatalf("expected entry count, got %q", got)
	}
	if strings.Contains(got, "select:") {
		t.Fatalf("unexpected selection input in footer: %q", got)
	}

	withInput := stripANSI(ListFooter(0, 1, 3, "12", th))
	if !strings.Contains(withInput, "select: 12_") {
		t.Fatalf("expected selection input, got %q", withInput)
	}
}

func TestArticleFooter(t *testing.T) {
	got := stripANSI(ArticleFooter(0, 3, 4, 10, tuitheme.Default()))
	if !strings.Contains(got, "1 of 3") {
		t.Fatalf("expected page label, got %q", got)
	}
	if !strings.Contains(got, "5 of 10") {
		t.Fatalf("expected entry position, got %q", got)
	}
}

func TestToolbar(t *testing.T) {
	list := Toolbar(false)
	if !strings.Contains(list, "enter") || !strings.Contains(list, "q: quit") {
		t.Fatalf("unexpected list toolbar: %q", list)
	}
	article := Toolbar(true)
	if !strings.Contains(article, "s: save") || !strings.Contains(article, "o: open") {
		t.Fatalf("unexpected article toolbar: %q", article)
	}
}
