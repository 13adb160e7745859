package app

import (
	"context"
	"fmt"

	"github.com/glabrego/feedview/internal/feed"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (feed.Feed, error)
}

// Service loads the feed the session is built on. Fetch happens once at
// startup; a fetch or parse failure is fatal for the session.
type Service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

func (s *Service) Load(ctx context.Context, url string) (feed.Feed, error) {
	f, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return feed.Feed{}, fmt.Errorf("load feed %s: %w", url, err)
	}
	return f, nil
}
