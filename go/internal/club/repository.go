package club

import (
	"context"
	"fmt"

	"github.com/mcdev12/clubsite/go/internal/club/db"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/sqlutil"
)

// Repository handles reads of the club's static content
type Repository struct {
	queries db.Querier
}

// NewRepository creates a new club content repository
func NewRepository(queries db.Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListPartners returns all partners, oldest first
func (r *Repository) ListPartners(ctx context.Context) ([]models.Partner, error) {
	rows, err := r.queries.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	partners := make([]models.Partner, len(rows))
	for i, row := range rows {
		partners[i] = models.Partner{
			ID:        row.ID,
			Image:     row.Image,
			Link:      row.Link,
			CreatedAt: row.CreatedAt,
		}
	}
	return partners, nil
}

// ListAboutCompany returns the "About the club" blocks
func (r *Repository) ListAboutCompany(ctx context.Context) ([]models.AboutCompany, error) {
	rows, err := r.queries.ListAboutCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list about company: %w", err)
	}
	blocks := make([]models.AboutCompany, len(rows))
	for i, row := range rows {
		blocks[i] = models.AboutCompany{
			ID:          row.ID,
			Image:       sqlutil.FromSqlStringPtr(row.Image),
			Description: sqlutil.ToText(row.DescriptionUz, row.DescriptionRu, row.DescriptionEn),
			CreatedAt:   row.CreatedAt,
		}
	}
	return blocks, nil
}

// ListStadiums returns the stadium page blocks
func (r *Repository) ListStadiums(ctx context.Context) ([]models.Stadium, error) {
	rows, err := r.queries.ListStadiums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}
	stadiums := make([]models.Stadium, len(rows))
	for i, row := range rows {
		stadiums[i] = models.Stadium{
			ID:          row.ID,
			Image:       sqlutil.FromSqlStringPtr(row.Image),
			Description: sqlutil.ToText(row.DescriptionUz, row.DescriptionRu, row.DescriptionEn),
			CreatedAt:   row.CreatedAt,
		}
	}
	return stadiums, nil
}

// ListBanners returns the home page slides
func (r *Repository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	rows, err := r.queries.ListBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	banners := make([]models.Banner, len(rows))
	for i, row := range rows {
		banners[i] = models.Banner{
			ID:        row.ID,
			Image:     row.Banner,
			Title:     sqlutil.ToText(row.TitleUz, row.TitleRu, row.TitleEn),
			Link:      row.Link,
			CreatedAt: row.CreatedAt,
		}
	}
	return banners, nil
}

// ListAboutAcademy returns the academy page blocks
func (r *Repository) ListAboutAcademy(ctx context.Context) ([]models.AboutAcademy, error) {
	rows, err := r.queries.ListAboutAcademy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list about academy: %w", err)
	}
	blocks := make([]models.AboutAcademy, len(rows))
	for i, row := range rows {
		blocks[i] = models.AboutAcademy{
			ID:          row.ID,
			Description: sqlutil.ToText(row.DescriptionUz, row.DescriptionRu, row.DescriptionEn),
			Image:       sqlutil.FromSqlStringPtr(row.Image),
			CreatedAt:   row.CreatedAt,
		}
	}
	return blocks, nil
}

// ListLeaders returns the club leadership
func (r *Repository) ListLeaders(ctx context.Context) ([]models.Leader, error) {
	rows, err := r.queries.ListLeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}
	return dbLeadersToDomain(rows), nil
}

// SearchLeaders returns up to limit leaders whose full name contains query,
// ignoring case
func (r *Repository) SearchLeaders(ctx context.Context, query string, limit int) ([]models.Leader, error) {
	rows, err := r.queries.SearchLeaders(ctx, db.SearchLeadersParams{
		Pattern: sqlutil.ContainsPattern(query),
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search leaders: %w", err)
	}
	return dbLeadersToDomain(rows), nil
}

func dbLeadersToDomain(rows []db.Leader) []models.Leader {
	leaders := make([]models.Leader, len(rows))
	for i, row := range rows {
		leaders[i] = models.Leader{
			ID:        row.ID,
			FullName:  row.FullName,
			Position:  row.Position,
			Country:   row.Country,
			Image:     row.Image,
			BirthDate: row.BirthDate,
			CreatedAt: row.CreatedAt,
		}
	}
	return leaders
}
