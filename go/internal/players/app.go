package players

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	ListPositions(ctx context.Context) ([]models.PlayerPosition, error)
	ListByGender(ctx context.Context, gender models.Gender) ([]models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// App handles player read logic
type App struct {
	repo PlayerRepository
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListSquad returns every position with the players of one bucket attached.
// A position without players in the bucket is kept with an empty list.
func (a *App) ListSquad(ctx context.Context, gender models.Gender) ([]models.PlayerPosition, error) {
	positions, err := a.repo.ListPositions(ctx)
	if err != nil {
		return nil, err
	}
	players, err := a.repo.ListByGender(ctx, gender)
	if err != nil {
		return nil, err
	}

	byPosition := make(map[uuid.UUID][]models.Player, len(positions))
	for _, p := range players {
		byPosition[p.PositionID] = append(byPosition[p.PositionID], p)
	}
	for i := range positions {
		squad := byPosition[positions[i].ID]
		if squad == nil {
			squad = []models.Player{}
		}
		positions[i].Players = squad
	}
	return positions, nil
}

// GetPlayer retrieves a player with country and position
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}
