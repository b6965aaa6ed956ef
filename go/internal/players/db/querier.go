package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	GetPlayerWithRelations(ctx context.Context, id uuid.UUID) (GetPlayerWithRelationsRow, error)
	ListPlayerPositions(ctx context.Context) ([]PlayerPosition, error)
	ListPlayersByGender(ctx context.Context, gender string) ([]Player, error)
	SearchPlayers(ctx context.Context, arg SearchPlayersParams) ([]Player, error)
}

var _ Querier = (*Queries)(nil)
