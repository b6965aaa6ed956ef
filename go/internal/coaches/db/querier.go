package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	GetCoachWithPosition(ctx context.Context, id uuid.UUID) (GetCoachWithPositionRow, error)
	ListCoachInformation(ctx context.Context, coachID uuid.UUID) ([]CoachInformation, error)
	ListCoachesByGender(ctx context.Context, gender string) ([]ListCoachesByGenderRow, error)
	ListCoachesByGenderAndType(ctx context.Context, arg ListCoachesByGenderAndTypeParams) ([]ListCoachesByGenderAndTypeRow, error)
	ListCoachesByType(ctx context.Context, coachType string) ([]ListCoachesByTypeRow, error)
	SearchCoaches(ctx context.Context, arg SearchCoachesParams) ([]SearchCoachesRow, error)
}

var _ Querier = (*Queries)(nil)
