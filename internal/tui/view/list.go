package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/feedview/internal/feed"
	"github.com/glabrego/feedview/internal/layout"
	tuitheme "github.com/glabrego/feedview/internal/tui/theme"
)

const summaryIndent = 5

type EntryRowParams struct {
	Entry        feed.Entry
	Summary      string // plain-text summary, already stripped of HTML
	Index        int    // zero-based position in the feed, shown one-based
	Width        int
	SummaryLines int
	DateFormat   string
}

// EntryRowLines renders one list row: a numbered title line with the date
// right-aligned, followed by up to SummaryLines wrapped summary lines. The
// row's display height is exactly len of the returned slice.
func EntryRowLines(p EntryRowParams, th tuitheme.Theme) []string {
	prefix := fmt.Sprintf("%3d. ", p.Index+1)
	dateLabel := "[" + EntryDateLabel(p.Entry, p.DateFormat) + "]"

	available := p.Width - utf8.RuneCountInString(prefix) - 1 - utf8.RuneCountInString(dateLabel)
	if available < 1 {
		available = 1
	}
	title := strings.TrimSpace(p.Entry.Title)
	if title == "" {
		title = "No title"
	}
	title = layout.Truncate(title, available)

	gap := p.Width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(title) - utf8.RuneCountInString(dateLabel)
	if gap < 1 {
		gap = 1
	}
	lines := []string{
		th.EntryNum.Render(prefix) + th.EntryTitle.Render(title) + strings.Repeat(" ", gap) + th.EntryDate.Render(dateLabel),
	}

	if p.SummaryLines > 0 {
		summary := strings.TrimSpace(p.Summary)
		if summary == "" {
			summary = "No summary"
		}
		summaryWidth := p.Width - summaryIndent
		if summaryWidth < 1 {
			summaryWidth = 1
		}
		wrapped := layout.WrapText(summary, summaryWidth)
		if len(wrapped) > p.SummaryLines {
			wrapped = wrapped[:p.SummaryLines]
			last := wrapped[len(wrapped)-1]
			wrapped[len(wrapped)-1] = layout.Truncate(last+" …", summaryWidth)
		}
		indent := strings.Repeat(" ", summaryIndent)
		for _, line := range wrapped {
			lines = append(lines, indent+th.Summary.Render(line))
		}
	}

	return lines
}

// EntryDateLabel formats an entry date for display: parsed published date
// first, raw text passthrough when parsing failed, updated date as fallback.
func EntryDateLabel(entry feed.Entry, format string) string {
	if entry.PublishedAt != nil {
		return entry.PublishedAt.Format(format)
	}
	if entry.Published != "" {
		return entry.Published
	}
	if entry.UpdatedAt != nil {
		return entry.UpdatedAt.Format(format)
	}
	if entry.Updated != "" {
		return entry.Updated
	}
	return "No date"
}
