package view

import (
	"strings"
	"unicode/utf8"

	"github.com/glabrego/feedview/internal/feed"
	"github.com/glabrego/feedview/internal/layout"
)

// ArticleLines builds the full line sequence of an open article: wrapped
// title, underline, date and URL meta lines, then the wrapped body. The
// caller paginates the result to the screen height.
func ArticleLines(entry feed.Entry, body string, width int, dateFormat string) []string {
	if width < 1 {
		width = 1
	}
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "No title"
	}

	lines := make([]string, 0, 16)
	lines = append(lines, layout.WrapText(title, width)...)
	underline := utf8.RuneCountInString(title)
	if underline > width {
		underline = width
	}
	lines = append(lines, strings.Repeat("=", underline))
	lines = append(lines, "Date: "+EntryDateLabel(entry, dateFormat))
	if entry.Link != "" {
		lines = append(lines, layout.WrapText("URL: "+entry.Link, width)...)
	}
	lines = append(lines, "")

	body = strings.TrimSpace(body)
	if body == "" {
		body = "No content available"
	}
	lines = append(lines, layout.WrapText(body, width)...)
	return lines
}
