package feed

import "time"

// Feed is one fetched feed: a title and its entries in feed order. It is
// built once at startup and never mutated afterwards.
type Feed struct {
	Title   string
	Entries []Entry
}

// Entry is the subset of item fields the viewer needs. Optional fields stay
// explicit: raw date text is kept as it appeared in the feed, the parsed
// form is nil when the field was absent or unparseable.
type Entry struct {
	Title   string
	Link    string
	Summary string // HTML
	Content string // HTML, empty when the feed carries only a summary

	Published   string
	PublishedAt *time.Time
	Updated     string
	UpdatedAt   *time.Time
}

// Body returns the HTML used for reading and export: the full content when
// present, the summary otherwise.
func (e Entry) Body() string {
	if e.Content != "" {
		return e.Content
	}
	return e.Summary
}
