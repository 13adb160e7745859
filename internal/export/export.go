// Package export writes feed entries to markdown files with a fixed
// frontmatter block, one file per entry under the export directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/glabrego/feedview/internal/feed"
	"github.com/glabrego/feedview/internal/render"
)

var (
	reSlugStrip    = regexp.MustCompile(`[^\w\s-]`)
	reSlugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts text into a filesystem-safe slug: lowercase, word
// characters only, runs of whitespace and hyphens collapsed to one hyphen.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = reSlugStrip.ReplaceAllString(text, "")
	text = reSlugCollapse.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

type Exporter struct {
	dir      string
	renderer *render.Renderer
	nowFn    func() time.Time
}

func NewExporter(dir string, renderer *render.Renderer) *Exporter {
	return &Exporter{
		dir:      dir,
		renderer: renderer,
		nowFn:    time.Now,
	}
}

// Export writes the entry as <dir>/<YYYY-MM-DD>-<slug>.md and returns the
// written path. A second export of the same title on the same day overwrites
// the first; that is a documented limitation, not a defect.
func (e *Exporter) Export(entry feed.Entry) (string, error) {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "Untitled"
	}
	slug := Slugify(title)
	if slug == "" {
		slug = "untitled"
	}

	date := e.fileDate(entry)
	path := filepath.Join(e.dir, fmt.Sprintf("%s-%s.md", date, slug))

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	body := e.renderer.Markdown(entry.Body())
	if body == "" {
		body = "No content available"
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "date: %s\n", date)
	fmt.Fprintf(&b, "url: %s\n", entry.Link)
	b.WriteString("---\n\n")
	b.WriteString(body)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write markdown file: %w", err)
	}
	return path, nil
}

// fileDate resolves the filename date prefix: published date first, updated
// date next, today when neither parsed.
func (e *Exporter) fileDate(entry feed.Entry) string {
	if entry.PublishedAt != nil {
		return entry.PublishedAt.Format(time.DateOnly)
	}
	if entry.UpdatedAt != nil {
		return entry.UpdatedAt.Format(time.DateOnly)
	}
	return e.nowFn().Format(time.DateOnly)
}
