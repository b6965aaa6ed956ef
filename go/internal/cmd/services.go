package main

import (
	"database/sql"

	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/club"
	clubdb "github.com/mcdev12/clubsite/go/internal/club/db"
	"github.com/mcdev12/clubsite/go/internal/coaches"
	coachesdb "github.com/mcdev12/clubsite/go/internal/coaches/db"
	"github.com/mcdev12/clubsite/go/internal/news"
	newsdb "github.com/mcdev12/clubsite/go/internal/news/db"
	"github.com/mcdev12/clubsite/go/internal/pagination"
	"github.com/mcdev12/clubsite/go/internal/players"
	playersdb "github.com/mcdev12/clubsite/go/internal/players/db"
	"github.com/mcdev12/clubsite/go/internal/search"
)

type Services struct {
	News    *news.Service
	Players *players.Service
	Coaches *coaches.Service
	Club    *club.Service
	Search  *search.Service
}

func setupServices(database *sql.DB, pager pagination.Paginator, f api.Formatter) *Services {
	// Database layer → Repository layer → App layer → Service layer

	// News
	newsRepo := news.NewRepository(newsdb.New(database), database)
	newsApp := news.NewApp(newsRepo)
	newsService := news.NewService(newsApp, pager, f)

	// Players
	playersRepo := players.NewRepository(playersdb.New(database))
	playersApp := players.NewApp(playersRepo)
	playersService := players.NewService(playersApp, f)

	// Coaches
	coachesRepo := coaches.NewRepository(coachesdb.New(database))
	coachesApp := coaches.NewApp(coachesRepo)
	coachesService := coaches.NewService(coachesApp, f)

	// Club content
	clubRepo := club.NewRepository(clubdb.New(database))
	clubApp := club.NewApp(clubRepo)
	clubService := club.NewService(clubApp, f)

	// Search reads through the repositories directly
	searchApp := search.NewApp(newsRepo, playersRepo, coachesRepo, clubRepo)
	searchService := search.NewService(searchApp, f)

	return &Services{
		News:    newsService,
		Players: playersService,
		Coaches: coachesService,
		Club:    clubService,
		Search:  searchService,
	}
}
