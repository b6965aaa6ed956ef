// Package storetest provides an in-memory sqlite database with the site
// schema and helpers to insert fixture rows from tests.
package storetest

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/sqlutil"
	_ "modernc.org/sqlite"
)

// Base is the creation time of the first fixture row. Tests derive later
// rows with At.
var Base = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// At returns Base shifted by n minutes
func At(n int) time.Time {
	return Base.Add(time.Duration(n) * time.Minute)
}

// Str returns a pointer to s
func Str(s string) *string {
	return &s
}

// Text builds a fully translated value
func Text(uz, ru, en string) i18n.Text {
	return i18n.Text{UZ: Str(uz), RU: Str(ru), EN: Str(en)}
}

// Open returns a fresh in-memory database with the schema applied. It is
// closed when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to apply schema: %v\n%s", err, stmt)
		}
	}
	return db
}

func exec(t testing.TB, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("failed to insert fixture: %v", err)
	}
}

func idOrNew(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func InsertNewsCategory(t testing.TB, db *sql.DB, c models.NewsCategory) models.NewsCategory {
	t.Helper()
	c.ID = idOrNew(c.ID)
	uz, ru, en := sqlutil.FromText(c.Name)
	exec(t, db, `INSERT INTO news_categories (id, name_uz, name_ru, name_en, created_at)
		VALUES ($1, $2, $3, $4, $5)`, c.ID, uz, ru, en, c.CreatedAt)
	return c
}

func InsertNews(t testing.TB, db *sql.DB, n models.News) models.News {
	t.Helper()
	n.ID = idOrNew(n.ID)
	if n.Slug == "" {
		n.Slug = "news-" + n.ID.String()
	}
	tuz, tru, ten := sqlutil.FromText(n.Title)
	duz, dru, den := sqlutil.FromText(n.Description)
	exec(t, db, `INSERT INTO news (id, slug, title_uz, title_ru, title_en,
		description_uz, description_ru, description_en, image, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		n.ID, n.Slug, tuz, tru, ten, duz, dru, den, n.Image, n.CategoryID, n.CreatedAt)
	return n
}

func InsertPlayerCountry(t testing.TB, db *sql.DB, c models.PlayerCountry) models.PlayerCountry {
	t.Helper()
	c.ID = idOrNew(c.ID)
	exec(t, db, `INSERT INTO player_countries (id, flag, name, created_at)
		VALUES ($1, $2, $3, $4)`, c.ID, c.Flag, c.Name, c.CreatedAt)
	return c
}

func InsertPlayerPosition(t testing.TB, db *sql.DB, p models.PlayerPosition) models.PlayerPosition {
	t.Helper()
	p.ID = idOrNew(p.ID)
	uz, ru, en := sqlutil.FromText(p.Name)
	exec(t, db, `INSERT INTO player_positions (id, name_uz, name_ru, name_en, created_at)
		VALUES ($1, $2, $3, $4, $5)`, p.ID, uz, ru, en, p.CreatedAt)
	return p
}

func InsertPlayer(t testing.TB, db *sql.DB, p models.Player) models.Player {
	t.Helper()
	p.ID = idOrNew(p.ID)
	duz, dru, den := sqlutil.FromText(p.Description)
	exec(t, db, `INSERT INTO players (id, full_name, image, number, goal, "match", assist,
		birth_date, height, description_uz, description_ru, description_en,
		gender, country_id, position_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.FullName, p.Image, p.Number, p.Goals, p.Matches, p.Assists,
		p.BirthDate, p.Height, duz, dru, den,
		string(p.Gender), p.CountryID, p.PositionID, p.CreatedAt)
	return p
}

func InsertCoachPosition(t testing.TB, db *sql.DB, p models.CoachPosition) models.CoachPosition {
	t.Helper()
	p.ID = idOrNew(p.ID)
	uz, ru, en := sqlutil.FromText(p.Name)
	exec(t, db, `INSERT INTO coach_positions (id, name_uz, name_ru, name_en, created_at)
		VALUES ($1, $2, $3, $4, $5)`, p.ID, uz, ru, en, p.CreatedAt)
	return p
}

func InsertCoach(t testing.TB, db *sql.DB, c models.Coach) models.Coach {
	t.Helper()
	c.ID = idOrNew(c.ID)
	if c.Type == "" {
		c.Type = models.CoachTypeTeam
	}
	exec(t, db, `INSERT INTO coaches (id, full_name, image, banner, position_id, gender, coach_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.FullName, c.Image, sqlutil.ToSqlString(c.Banner), c.PositionID,
		string(c.Gender), string(c.Type), c.CreatedAt)
	return c
}

func InsertCoachInformation(t testing.TB, db *sql.DB, info models.CoachInformation) models.CoachInformation {
	t.Helper()
	info.ID = idOrNew(info.ID)
	nuz, nru, nen := sqlutil.FromText(info.Name)
	vuz, vru, ven := sqlutil.FromText(info.Value)
	exec(t, db, `INSERT INTO coach_information (id, coach_id, name_uz, name_ru, name_en,
		value_uz, value_ru, value_en, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		info.ID, info.CoachID, nuz, nru, nen, vuz, vru, ven, info.CreatedAt)
	return info
}

func InsertPartner(t testing.TB, db *sql.DB, p models.Partner) models.Partner {
	t.Helper()
	p.ID = idOrNew(p.ID)
	exec(t, db, `INSERT INTO partners (id, image, link, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Image, p.Link, p.CreatedAt)
	return p
}

// InsertDescribedBlock inserts into about_company, stadiums or about_academy
func InsertDescribedBlock(t testing.TB, db *sql.DB, table string, id uuid.UUID, image *string, description i18n.Text, createdAt time.Time) uuid.UUID {
	t.Helper()
	id = idOrNew(id)
	uz, ru, en := sqlutil.FromText(description)
	exec(t, db, `INSERT INTO `+table+` (id, image, description_uz, description_ru, description_en, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, id, sqlutil.ToSqlString(image), uz, ru, en, createdAt)
	return id
}

func InsertBanner(t testing.TB, db *sql.DB, b models.Banner) models.Banner {
	t.Helper()
	b.ID = idOrNew(b.ID)
	uz, ru, en := sqlutil.FromText(b.Title)
	exec(t, db, `INSERT INTO banners (id, banner, title_uz, title_ru, title_en, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, b.ID, b.Image, uz, ru, en, b.Link, b.CreatedAt)
	return b
}

func InsertLeader(t testing.TB, db *sql.DB, l models.Leader) models.Leader {
	t.Helper()
	l.ID = idOrNew(l.ID)
	exec(t, db, `INSERT INTO leaders (id, full_name, position, country, image, birth_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.FullName, l.Position, l.Country, l.Image, l.BirthDate, l.CreatedAt)
	return l
}
