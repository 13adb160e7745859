// Package layout holds the pure text-shaping and pagination arithmetic the
// views are built on: word wrapping, whole-word truncation and greedy packing
// of variable-height items into screen-sized pages.
package layout

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "…"

// Page is a half-open index range [Start, End) into the paginated sequence.
type Page struct {
	Start int
	End   int
}

func (p Page) Len() int {
	return p.End - p.Start
}

// WrapText word-wraps text to the given width. Words are never split unless
// a single word is longer than the width, in which case it is hard-cut.
// Existing newlines are kept as paragraph breaks.
func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for utf8.RuneCountInString(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				runes := []rune(word)
				out = append(out, string(runes[:width]))
				word = string(runes[width:])
			}

			if line == "" {
				line = word
				continue
			}
			if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// WrapCount reports how many lines text occupies when wrapped at width.
func WrapCount(text string, width int) int {
	return len(WrapText(text, width))
}

// Truncate returns text unchanged when it fits in maxWidth columns. Otherwise
// it returns the longest whole-word prefix fitting in maxWidth-1 columns plus
// an ellipsis. When even the first word does not fit, it hard-cuts instead.
func Truncate(text string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxWidth {
		return text
	}

	budget := maxWidth - 1
	prefix := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if prefix != "" {
			candidate = prefix + " " + word
		}
		if utf8.RuneCountInString(candidate) > budget {
			break
		}
		prefix = candidate
	}
	if prefix == "" {
		runes := []rune(strings.TrimSpace(text))
		if len(runes) > budget {
			runes = runes[:budget]
		}
		prefix = string(runes)
	}
	return prefix + ellipsis
}

// Paginate packs count items into pages whose cumulative height stays within
// capacity. heightAt reports the display height of item i; heights below one
// count as one. An item taller than capacity still gets a page of its own.
// Empty input yields a single empty page so callers can always render a
// "page 1 of 1" state. Results are recomputed from scratch on every call.
func Paginate(count int, heightAt func(int) int, capacity int) []Page {
	if capacity < 1 {
		capacity = 1
	}
	if count <= 0 {
		return []Page{{}}
	}

	pages := make([]Page, 0, 4)
	start, used := 0, 0
	for i := 0; i < count; i++ {
		h := heightAt(i)
		if h < 1 {
			h = 1
		}
		if i > start && used+h > capacity {
			pages = append(pages, Page{Start: start, End: i})
			start, used = i, 0
		}
		used += h
	}
	return append(pages, Page{Start: start, End: count})
}

// ClampPage keeps a page index within [0, pageCount).
func ClampPage(index, pageCount int) int {
	if pageCount <= 0 {
		return 0
	}
	if index >= pageCount {
		return pageCount - 1
	}
	if index < 0 {
		return 0
	}
	return index
}
