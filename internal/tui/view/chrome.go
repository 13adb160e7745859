package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/feedview/internal/tui/theme"
)

func Header(feedTitle string, entryCount int, th tuitheme.Theme) string {
	title := strings.TrimSpace(feedTitle)
	if title == "" {
		title = "No title"
	}
	return th.Header.Render(title) + " " + th.MetaValue.Render(fmt.Sprintf("(%d entries)", entryCount))
}

func Toolbar(inArticle bool) string {
	if inArticle {
		return "n/p: page | o: open in browser | s: save markdown | y: copy URL | esc/b: back | ?: help"
	}
	return "n/p: page | 1-9 + enter: read entry | ?: help | q: quit"
}

func PageLabel(page, pageCount int, th tuitheme.Theme) string {
	return th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d of %d", page+1, pageCount))
}

func ListFooter(page, pageCount, entryCount int, input string, th tuitheme.Theme) string {
	parts := []string{
		PageLabel(page, pageCount, th),
		th.MetaValue.Render(fmt.Sprintf("%d entries", entryCount)),
	}
	if input != "" {
		parts = append(parts, th.InputLabel.Render("select: "+input+"_"))
	}
	return strings.Join(parts, " • ")
}

func ArticleFooter(page, pageCount, entryIndex, entryCount int, th tuitheme.Theme) string {
	parts := []string{
		PageLabel(page, pageCount, th),
		th.MetaLabel.Render("entry") + " " + th.MetaValue.Render(fmt.Sprintf("%d of %d", entryIndex+1, entryCount)),
	}
	return strings.Join(parts, " • ")
}

func HelpLines(th tuitheme.Theme) []string {
	row := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s", th.HelpKey.Render(fmt.Sprintf("%-12s", key)), desc)
	}
	return []string{
		"List",
		row("n / right", "next page"),
		row("p / left", "previous page"),
		row("1-9 + enter", "read entry by number"),
		row("q / ctrl+c", "quit"),
		"",
		"Article",
		row("n / p", "next / previous page"),
		row("o", "open original URL in browser"),
		row("s", "save entry as markdown"),
		row("y", "copy URL to clipboard"),
		row("esc / b", "back to list"),
		"",
		row("?", "close help"),
	}
}
