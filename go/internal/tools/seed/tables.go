package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mcdev12/clubsite/go/internal/i18n"
	"github.com/mcdev12/clubsite/go/internal/models"
)

// table is one batch of rows for a single INSERT statement
type table struct {
	name    string
	columns []string
	rows    []tableRow
}

type tableRow struct {
	id   string
	args []any
}

// insertSQL inserts one row, leaving rows that already exist untouched
func (t table) insertSQL() string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))
}

func localizedArgs(l Localized) []any {
	values := l.text().Values()
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func row(id string, parts ...any) tableRow {
	var args []any
	for _, p := range parts {
		if l, ok := p.(Localized); ok {
			args = append(args, localizedArgs(l)...)
			continue
		}
		args = append(args, p)
	}
	return tableRow{id: id, args: args}
}

func birthDate(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

// stamper hands out creation times for rows that have none
type stamper struct {
	next time.Time
}

func (s *stamper) at(t *time.Time) time.Time {
	if t != nil {
		return t.UTC()
	}
	s.next = s.next.Add(time.Second)
	return s.next
}

// tables returns the fixture rows in foreign key order
func (f *Fixture) tables(now time.Time) []table {
	st := &stamper{next: now.UTC().Truncate(time.Second)}
	var out []table

	t := table{name: "news_categories", columns: slices.Concat([]string{"id"}, i18n.Columns("name"), []string{"created_at"})}
	for _, c := range f.NewsCategories {
		t.rows = append(t.rows, row(c.ID, c.ID, c.Name, st.at(c.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "news", columns: slices.Concat(
		[]string{"id", "slug"}, i18n.Columns("title"), i18n.Columns("description"),
		[]string{"image", "category_id", "created_at"})}
	for _, n := range f.News {
		t.rows = append(t.rows, row(n.ID, n.ID, n.Slug, n.Title, n.Description, n.Image, n.CategoryID, st.at(n.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "player_countries", columns: []string{"id", "name", "flag", "created_at"}}
	for _, c := range f.PlayerCountries {
		t.rows = append(t.rows, row(c.ID, c.ID, c.Name, c.Flag, st.at(c.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "player_positions", columns: slices.Concat([]string{"id"}, i18n.Columns("name"), []string{"created_at"})}
	for _, p := range f.PlayerPositions {
		t.rows = append(t.rows, row(p.ID, p.ID, p.Name, st.at(p.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "players", columns: slices.Concat(
		[]string{"id", "full_name", "image", "number", "goal", `"match"`, "assist", "birth_date", "height"},
		i18n.Columns("description"),
		[]string{"gender", "country_id", "position_id", "created_at"})}
	for _, p := range f.Players {
		t.rows = append(t.rows, row(p.ID, p.ID, p.FullName, p.Image, p.Number, p.Goal, p.Match, p.Assist,
			birthDate(p.BirthDate), p.Height, p.Description, p.Gender, p.CountryID, p.PositionID, st.at(p.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "partners", columns: []string{"id", "image", "link", "created_at"}}
	for _, p := range f.Partners {
		t.rows = append(t.rows, row(p.ID, p.ID, p.Image, p.Link, st.at(p.CreatedAt)))
	}
	out = append(out, t)

	for _, blocks := range []struct {
		name string
		rows []DescribedBlock
	}{
		{"about_company", f.AboutCompany},
		{"stadiums", f.Stadiums},
		{"about_academy", f.AboutAcademy},
	} {
		t = table{name: blocks.name, columns: slices.Concat([]string{"id", "image"}, i18n.Columns("description"), []string{"created_at"})}
		for _, b := range blocks.rows {
			t.rows = append(t.rows, row(b.ID, b.ID, b.Image, b.Description, st.at(b.CreatedAt)))
		}
		out = append(out, t)
	}

	t = table{name: "banners", columns: slices.Concat([]string{"id", "banner"}, i18n.Columns("title"), []string{"link", "created_at"})}
	for _, b := range f.Banners {
		t.rows = append(t.rows, row(b.ID, b.ID, b.Banner, b.Title, b.Link, st.at(b.CreatedAt)))
	}
	out = append(out, t)

	t = table{name: "coach_positions", columns: slices.Concat([]string{"id"}, i18n.Columns("name"), []string{"created_at"})}
	for _, p := range f.CoachPositions {
		t.rows = append(t.rows, row(p.ID, p.ID, p.Name, st.at(p.CreatedAt)))
	}
	out = append(out, t)

	coaches := table{name: "coaches", columns: []string{"id", "full_name", "image", "banner", "position_id", "gender", "coach_type", "created_at"}}
	infos := table{name: "coach_information", columns: slices.Concat(
		[]string{"id", "coach_id"}, i18n.Columns("name"), i18n.Columns("value"), []string{"created_at"})}
	for _, c := range f.Coaches {
		coachType := c.CoachType
		if coachType == "" {
			coachType = string(models.CoachTypeTeam)
		}
		coaches.rows = append(coaches.rows, row(c.ID, c.ID, c.FullName, c.Image, c.Banner, c.PositionID, c.Gender, coachType, st.at(c.CreatedAt)))
		for _, info := range c.Infos {
			infos.rows = append(infos.rows, row(info.ID, info.ID, c.ID, info.Name, info.Value, st.at(nil)))
		}
	}
	out = append(out, coaches, infos)

	t = table{name: "leaders", columns: []string{"id", "full_name", "position", "country", "image", "birth_date", "created_at"}}
	for _, l := range f.Leaders {
		t.rows = append(t.rows, row(l.ID, l.ID, l.FullName, l.Position, l.Country, l.Image, birthDate(l.BirthDate), st.at(l.CreatedAt)))
	}
	out = append(out, t)

	return out
}
