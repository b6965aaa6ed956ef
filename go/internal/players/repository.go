package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/players/db"
	"github.com/mcdev12/clubsite/go/internal/sqlutil"
)

// Repository handles all player-related database reads
type Repository struct {
	queries db.Querier
}

// NewRepository creates a new player repository
func NewRepository(queries db.Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListPositions returns every position, oldest first
func (r *Repository) ListPositions(ctx context.Context) ([]models.PlayerPosition, error) {
	rows, err := r.queries.ListPlayerPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list player positions: %w", err)
	}

	positions := make([]models.PlayerPosition, len(rows))
	for i, row := range rows {
		positions[i] = models.PlayerPosition{
			ID:        row.ID,
			Name:      sqlutil.ToText(row.NameUz, row.NameRu, row.NameEn),
			CreatedAt: row.CreatedAt,
		}
	}
	return positions, nil
}

// ListByGender returns every player in the bucket, newest first
func (r *Repository) ListByGender(ctx context.Context, gender models.Gender) ([]models.Player, error) {
	rows, err := r.queries.ListPlayersByGender(ctx, string(gender))
	if err != nil {
		return nil, fmt.Errorf("failed to list players by gender: %w", err)
	}
	return dbPlayersToDomain(rows), nil
}

// GetPlayer retrieves a player by ID with country and position attached
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetPlayerWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	player := dbPlayerToDomain(row.Player)
	player.Country = &models.PlayerCountry{
		ID:        row.Player.CountryID,
		Name:      row.CountryName,
		Flag:      row.CountryFlag,
		CreatedAt: row.CountryCreatedAt,
	}
	player.Position = &models.PlayerPosition{
		ID:        row.Player.PositionID,
		Name:      sqlutil.ToText(row.PositionNameUz, row.PositionNameRu, row.PositionNameEn),
		CreatedAt: row.PositionCreatedAt,
	}
	return &player, nil
}

// SearchPlayers returns up to limit players whose full name contains query,
// ignoring case
func (r *Repository) SearchPlayers(ctx context.Context, query string, limit int) ([]models.Player, error) {
	rows, err := r.queries.SearchPlayers(ctx, db.SearchPlayersParams{
		Pattern: sqlutil.ContainsPattern(query),
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return dbPlayersToDomain(rows), nil
}

func dbPlayersToDomain(rows []db.Player) []models.Player {
	players := make([]models.Player, len(rows))
	for i, row := range rows {
		players[i] = dbPlayerToDomain(row)
	}
	return players
}

// Helper function to convert database player to domain model
func dbPlayerToDomain(row db.Player) models.Player {
	return models.Player{
		ID:          row.ID,
		FullName:    row.FullName,
		Image:       row.Image,
		Number:      int(row.Number),
		Goals:       int(row.Goal),
		Matches:     int(row.Match),
		Assists:     int(row.Assist),
		BirthDate:   row.BirthDate,
		Height:      row.Height,
		Description: sqlutil.ToText(row.DescriptionUz, row.DescriptionRu, row.DescriptionEn),
		Gender:      models.Gender(row.Gender),
		CountryID:   row.CountryID,
		PositionID:  row.PositionID,
		CreatedAt:   row.CreatedAt,
	}
}
