package search

import (
	"context"

	"github.com/mcdev12/clubsite/go/internal/models"
	"golang.org/x/sync/errgroup"
)

// ResultLimit caps every result list
const ResultLimit = 5

type NewsSearcher interface {
	SearchNews(ctx context.Context, query string, limit int) ([]models.News, error)
}

type PlayerSearcher interface {
	SearchPlayers(ctx context.Context, query string, limit int) ([]models.Player, error)
}

type CoachSearcher interface {
	SearchCoaches(ctx context.Context, query string, limit int) ([]models.Coach, error)
}

type LeaderSearcher interface {
	SearchLeaders(ctx context.Context, query string, limit int) ([]models.Leader, error)
}

// Results holds the matches of each entity type
type Results struct {
	News    []models.News
	Players []models.Player
	Coaches []models.Coach
	Leaders []models.Leader
}

// App runs site-wide search over news, players, coaches and leaders
type App struct {
	news    NewsSearcher
	players PlayerSearcher
	coaches CoachSearcher
	leaders LeaderSearcher
}

// NewApp creates a new search App
func NewApp(news NewsSearcher, players PlayerSearcher, coaches CoachSearcher, leaders LeaderSearcher) *App {
	return &App{
		news:    news,
		players: players,
		coaches: coaches,
		leaders: leaders,
	}
}

// Search runs the four lookups concurrently. The query must already be
// validated. Any failed lookup fails the whole search.
func (a *App) Search(ctx context.Context, query string) (*Results, error) {
	var res Results
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		res.News, err = a.news.SearchNews(ctx, query, ResultLimit)
		return err
	})
	g.Go(func() error {
		var err error
		res.Players, err = a.players.SearchPlayers(ctx, query, ResultLimit)
		return err
	})
	g.Go(func() error {
		var err error
		res.Coaches, err = a.coaches.SearchCoaches(ctx, query, ResultLimit)
		return err
	})
	g.Go(func() error {
		var err error
		res.Leaders, err = a.leaders.SearchLeaders(ctx, query, ResultLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
