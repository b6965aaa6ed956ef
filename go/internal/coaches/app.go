package coaches

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// CoachRepository defines what the app layer needs from the repository
type CoachRepository interface {
	ListByGenderAndType(ctx context.Context, gender models.Gender, coachType models.CoachType) ([]models.Coach, error)
	ListByGender(ctx context.Context, gender models.Gender) ([]models.Coach, error)
	ListByType(ctx context.Context, coachType models.CoachType) ([]models.Coach, error)
	GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error)
	ListInformation(ctx context.Context, coachID uuid.UUID) ([]models.CoachInformation, error)
}

// App handles coach read logic
type App struct {
	repo CoachRepository
}

// NewApp creates a new coach App
func NewApp(repo CoachRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListTeamCoaches returns the first-team staff of one gender
func (a *App) ListTeamCoaches(ctx context.Context, gender models.Gender) ([]models.Coach, error) {
	return a.repo.ListByGenderAndType(ctx, gender, models.CoachTypeTeam)
}

// ListStaffTable returns every coach of one gender for the staff table,
// academy staff included
func (a *App) ListStaffTable(ctx context.Context, gender models.Gender) ([]models.Coach, error) {
	return a.repo.ListByGender(ctx, gender)
}

// ListAcademyCoaches returns the academy staff
func (a *App) ListAcademyCoaches(ctx context.Context) ([]models.Coach, error) {
	return a.repo.ListByType(ctx, models.CoachTypeAcademy)
}

// GetCoach retrieves a coach with position and profile facts. A coach
// without facts gets an empty list.
func (a *App) GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error) {
	coach, err := a.repo.GetCoach(ctx, id)
	if err != nil {
		return nil, err
	}
	infos, err := a.repo.ListInformation(ctx, id)
	if err != nil {
		return nil, err
	}
	coach.Infos = infos
	return coach, nil
}
