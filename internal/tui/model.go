package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/feedview/internal/config"
	"github.com/glabrego/feedview/internal/feed"
	"github.com/glabrego/feedview/internal/layout"
	"github.com/glabrego/feedview/internal/render"
	"github.com/glabrego/feedview/internal/tui/actions"
	"github.com/glabrego/feedview/internal/tui/platform"
	tuitheme "github.com/glabrego/feedview/internal/tui/theme"
	"github.com/glabrego/feedview/internal/tui/view"
)

type screen int

const (
	screenList screen = iota
	screenArticle
)

// Rows outside the body region: header, toolbar, blank, blank, status, footer.
const chromeRows = 6

const maxSelectionDigits = 6

// Model is the interactive session over one immutable feed. Rendering is a
// pure function of the model state and the current terminal size; pagination
// is recomputed on every render so page boundaries always match the current
// dimensions.
type Model struct {
	feed      feed.Feed
	summaries []string
	cfg       config.Config
	th        tuitheme.Theme
	renderer  *render.Renderer
	exporter  actions.Exporter

	width  int
	height int

	scr          screen
	listPage     int
	articleIndex int
	articlePage  int
	articleBody  string
	input        string

	status     string
	statusWarn bool
	showHelp   bool

	openURLFn func(string) error
	copyURLFn func(string) error
}

func NewModel(f feed.Feed, cfg config.Config, renderer *render.Renderer, exporter actions.Exporter) Model {
	summaries := make([]string, len(f.Entries))
	for i, entry := range f.Entries {
		summaries[i] = render.PlainText(entry.Summary)
	}
	return Model{
		feed:      f,
		summaries: summaries,
		cfg:       cfg,
		th:        tuitheme.Default(),
		renderer:  renderer,
		exporter:  exporter,
		width:     80,
		height:    24,
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyURLToClipboard,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listPage = layout.ClampPage(m.listPage, len(m.listPages()))
		if m.scr == screenArticle {
			m.articlePage = layout.ClampPage(m.articlePage, len(m.articlePages()))
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "?" {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			switch msg.String() {
			case "esc":
				m.showHelp = false
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}
		if m.scr == screenArticle {
			return m.updateArticle(msg)
		}
		return m.updateList(msg)
	case actions.OpenURLSuccessMsg:
		m.status = msg.Status
		m.statusWarn = false
		return m, nil
	case actions.OpenURLErrorMsg:
		m.status = msg.Err.Error()
		m.statusWarn = true
		return m, nil
	case actions.ExportSuccessMsg:
		m.status = "Article saved as: " + msg.Path
		m.statusWarn = false
		return m, nil
	case actions.ExportErrorMsg:
		m.status = "Could not save article: " + msg.Err.Error()
		m.statusWarn = true
		return m, nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "n", "right", "pgdown":
		m.listPage = layout.ClampPage(m.listPage+1, len(m.listPages()))
		return m, nil
	case "p", "left", "pgup":
		m.listPage = layout.ClampPage(m.listPage-1, len(m.listPages()))
		return m, nil
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case "esc":
		m.input = ""
		return m, nil
	case "enter":
		input := m.input
		m.input = ""
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(m.feed.Entries) {
			return m, nil
		}
		return m.openArticle(n - 1), nil
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && len(m.input) < maxSelectionDigits {
		m.input += key
	}
	return m, nil
}

func (m Model) updateArticle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "right", "pgdown", " ":
		m.articlePage = layout.ClampPage(m.articlePage+1, len(m.articlePages()))
		return m, nil
	case "p", "left", "pgup":
		m.articlePage = layout.ClampPage(m.articlePage-1, len(m.articlePages()))
		return m, nil
	case "o":
		url, err := platform.ValidateEntryURL(m.feed.Entries[m.articleIndex].Link)
		if err != nil {
			m.status = err.Error()
			m.statusWarn = true
			return m, nil
		}
		return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
	case "y":
		url, err := platform.ValidateEntryURL(m.feed.Entries[m.articleIndex].Link)
		if err != nil {
			m.status = err.Error()
			m.statusWarn = true
			return m, nil
		}
		return m, actions.CopyURLCmd(url, m.copyURLFn)
	case "s":
		// The article view stays open after a save; the status line
		// reports the written path.
		return m, actions.ExportCmd(m.exporter, m.feed.Entries[m.articleIndex])
	case "esc", "b", "q", "backspace":
		m.scr = screenList
		m.articleBody = ""
		m.status = ""
		m.statusWarn = false
		return m, nil
	}
	return m, nil
}

func (m Model) openArticle(index int) Model {
	m.scr = screenArticle
	m.articleIndex = index
	m.articlePage = 0
	m.articleBody = m.renderer.Markdown(m.feed.Entries[index].Body())
	m.status = ""
	m.statusWarn = false
	return m
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.Header(m.feed.Title, len(m.feed.Entries), m.th))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("Help (? to close)\n\n")
		for _, line := range view.HelpLines(m.th) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.statusLine())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(view.Toolbar(m.scr == screenArticle))
	b.WriteString("\n\n")

	var footer string
	if m.scr == screenArticle {
		b.WriteString(m.articleView())
		pages := m.articlePages()
		page := layout.ClampPage(m.articlePage, len(pages))
		footer = view.ArticleFooter(page, len(pages), m.articleIndex, len(m.feed.Entries), m.th)
	} else {
		b.WriteString(m.listView())
		pages := m.listPages()
		page := layout.ClampPage(m.listPage, len(pages))
		footer = view.ListFooter(page, len(pages), len(m.feed.Entries), m.input, m.th)
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func (m Model) listView() string {
	if len(m.feed.Entries) == 0 {
		return "No entries available.\n"
	}
	pages := m.listPages()
	page := pages[layout.ClampPage(m.listPage, len(pages))]

	var b strings.Builder
	for i := page.Start; i < page.End; i++ {
		for _, line := range view.EntryRowLines(m.entryRowParams(i), m.th) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) articleView() string {
	lines := m.articleLines()
	pages := m.articlePages()
	page := pages[layout.ClampPage(m.articlePage, len(pages))]

	var b strings.Builder
	for i := page.Start; i < page.End; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.status == "" {
		return m.th.RenderStatus(false, "Ready")
	}
	return m.th.RenderStatus(m.statusWarn, m.status)
}

func (m Model) entryRowParams(index int) view.EntryRowParams {
	return view.EntryRowParams{
		Entry:        m.feed.Entries[index],
		Summary:      m.summaries[index],
		Index:        index,
		Width:        m.contentWidth(),
		SummaryLines: m.cfg.SummaryLines,
		DateFormat:   m.cfg.DateFormat,
	}
}

func (m Model) listPages() []layout.Page {
	heightAt := func(i int) int {
		return len(view.EntryRowLines(m.entryRowParams(i), m.th))
	}
	return layout.Paginate(len(m.feed.Entries), heightAt, m.bodyHeight())
}

func (m Model) articleLines() []string {
	entry := m.feed.Entries[m.articleIndex]
	return view.ArticleLines(entry, m.articleBody, m.contentWidth(), m.cfg.DateFormat)
}

func (m Model) articlePages() []layout.Page {
	count := len(m.articleLines())
	return layout.Paginate(count, func(int) int { return 1 }, m.bodyHeight())
}

func (m Model) contentWidth() int {
	if m.width < 20 {
		return 20
	}
	return m.width
}

func (m Model) bodyHeight() int {
	h := m.height - chromeRows
	if h < 3 {
		return 3
	}
	return h
}
