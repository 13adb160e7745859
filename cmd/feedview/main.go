package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/feedview/internal/app"
	"github.com/glabrego/feedview/internal/config"
	"github.com/glabrego/feedview/internal/export"
	"github.com/glabrego/feedview/internal/feed"
	"github.com/glabrego/feedview/internal/render"
	"github.com/glabrego/feedview/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "feedview <feed-url>",
		Short:        "Terminal RSS/Atom feed viewer",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(feedURL string) error {
	cfg := config.Default()
	cfg.FeedURL = feedURL
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	fetcher := feed.NewFetcher(cfg.HTTPTimeout, nil)
	service := app.NewService(fetcher)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	f, err := service.Load(ctx, cfg.FeedURL)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer()
	exporter := export.NewExporter(cfg.ExportDir, renderer)
	model := tui.NewModel(f, cfg, renderer, exporter)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
