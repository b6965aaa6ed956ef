package coaches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/coaches/db"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/sqlutil"
)

// Repository handles all coach-related database reads
type Repository struct {
	queries db.Querier
}

// NewRepository creates a new coach repository
func NewRepository(queries db.Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListByGenderAndType returns coaches of one gender and type with positions
func (r *Repository) ListByGenderAndType(ctx context.Context, gender models.Gender, coachType models.CoachType) ([]models.Coach, error) {
	rows, err := r.queries.ListCoachesByGenderAndType(ctx, db.ListCoachesByGenderAndTypeParams{
		Gender:    string(gender),
		CoachType: string(coachType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches by gender and type: %w", err)
	}
	coaches := make([]models.Coach, len(rows))
	for i, row := range rows {
		coaches[i] = dbCoachToDomain(row.Coach, row.CoachPosition)
	}
	return coaches, nil
}

// ListByGender returns coaches of one gender, any type, with positions
func (r *Repository) ListByGender(ctx context.Context, gender models.Gender) ([]models.Coach, error) {
	rows, err := r.queries.ListCoachesByGender(ctx, string(gender))
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches by gender: %w", err)
	}
	coaches := make([]models.Coach, len(rows))
	for i, row := range rows {
		coaches[i] = dbCoachToDomain(row.Coach, row.CoachPosition)
	}
	return coaches, nil
}

// ListByType returns coaches of one type with positions
func (r *Repository) ListByType(ctx context.Context, coachType models.CoachType) ([]models.Coach, error) {
	rows, err := r.queries.ListCoachesByType(ctx, string(coachType))
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches by type: %w", err)
	}
	coaches := make([]models.Coach, len(rows))
	for i, row := range rows {
		coaches[i] = dbCoachToDomain(row.Coach, row.CoachPosition)
	}
	return coaches, nil
}

// GetCoach retrieves a coach by ID with position attached
func (r *Repository) GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error) {
	row, err := r.queries.GetCoachWithPosition(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}
	coach := dbCoachToDomain(row.Coach, row.CoachPosition)
	return &coach, nil
}

// ListInformation returns a coach's profile facts in entry order
func (r *Repository) ListInformation(ctx context.Context, coachID uuid.UUID) ([]models.CoachInformation, error) {
	rows, err := r.queries.ListCoachInformation(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coach information: %w", err)
	}

	infos := make([]models.CoachInformation, len(rows))
	for i, row := range rows {
		infos[i] = models.CoachInformation{
			ID:        row.ID,
			CoachID:   row.CoachID,
			Name:      sqlutil.ToText(row.NameUz, row.NameRu, row.NameEn),
			Value:     sqlutil.ToText(row.ValueUz, row.ValueRu, row.ValueEn),
			CreatedAt: row.CreatedAt,
		}
	}
	return infos, nil
}

// SearchCoaches returns up to limit coaches whose full name contains query,
// ignoring case
func (r *Repository) SearchCoaches(ctx context.Context, query string, limit int) ([]models.Coach, error) {
	rows, err := r.queries.SearchCoaches(ctx, db.SearchCoachesParams{
		Pattern: sqlutil.ContainsPattern(query),
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search coaches: %w", err)
	}
	coaches := make([]models.Coach, len(rows))
	for i, row := range rows {
		coaches[i] = dbCoachToDomain(row.Coach, row.CoachPosition)
	}
	return coaches, nil
}

func dbCoachToDomain(c db.Coach, position db.CoachPosition) models.Coach {
	return models.Coach{
		ID:         c.ID,
		FullName:   c.FullName,
		Image:      c.Image,
		Banner:     sqlutil.FromSqlStringPtr(c.Banner),
		PositionID: c.PositionID,
		Gender:     models.Gender(c.Gender),
		Type:       models.CoachType(c.CoachType),
		CreatedAt:  c.CreatedAt,
		Position: &models.CoachPosition{
			ID:        position.ID,
			Name:      sqlutil.ToText(position.NameUz, position.NameRu, position.NameEn),
			CreatedAt: position.CreatedAt,
		},
	}
}
