package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/news/db"
	"github.com/mcdev12/clubsite/go/internal/storetest"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	database := storetest.Open(t)
	return NewRepository(db.New(database), database), database
}

// seedCategory inserts a category holding n articles created one minute apart
func seedCategory(t *testing.T, database *sql.DB, name string, n int) models.NewsCategory {
	t.Helper()
	cat := storetest.InsertNewsCategory(t, database, models.NewsCategory{
		Name:      storetest.Text(name, name+" ru", name+" en"),
		CreatedAt: storetest.Base,
	})
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %02d", name, i)
		storetest.InsertNews(t, database, models.News{
			Slug:        fmt.Sprintf("%s-%02d", name, i),
			Title:       storetest.Text(title, title+" ru", title+" en"),
			Description: storetest.Text("matn", "текст", "text"),
			Image:       fmt.Sprintf("news/2024/03/%02d.jpg", i),
			CategoryID:  cat.ID,
			CreatedAt:   storetest.At(i),
		})
	}
	return cat
}

func TestListByCategoryPagesNewestFirst(t *testing.T) {
	repo, database := newTestRepository(t)
	ctx := context.Background()

	club := seedCategory(t, database, "klub", 15)
	seedCategory(t, database, "match", 2)

	items, count, err := repo.ListByCategory(ctx, club.ID, 10, 10)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if count != 15 {
		t.Fatalf("count = %d, want 15", count)
	}
	if len(items) != 5 {
		t.Fatalf("len = %d, want 5", len(items))
	}
	if items[0].Slug != "klub-04" || items[4].Slug != "klub-00" {
		t.Fatalf("page 2 runs %s..%s, want klub-04..klub-00", items[0].Slug, items[4].Slug)
	}
	if items[0].Category == nil || items[0].Category.Name.String() != "klub" {
		t.Fatalf("category not attached: %+v", items[0].Category)
	}
}

func TestListByCategoryEmpty(t *testing.T) {
	repo, database := newTestRepository(t)
	empty := seedCategory(t, database, "bo'sh", 0)

	items, count, err := repo.ListByCategory(context.Background(), empty.ID, 10, 0)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if count != 0 || len(items) != 0 {
		t.Fatalf("got %d items, count %d; want none", len(items), count)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetCategory(context.Background(), uuid.New())
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestGetBySlug(t *testing.T) {
	repo, database := newTestRepository(t)
	seedCategory(t, database, "klub", 2)
	ctx := context.Background()

	n, err := repo.GetBySlug(ctx, "klub-01")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if n.Title.String() != "klub 01" || n.Description.EN == nil || *n.Description.EN != "text" {
		t.Fatalf("article = %+v", n)
	}
	if !n.CreatedAt.Equal(storetest.At(1)) {
		t.Fatalf("created_at = %v, want %v", n.CreatedAt, storetest.At(1))
	}

	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, ErrNewsNotFound) {
		t.Fatalf("err = %v, want ErrNewsNotFound", err)
	}
}

func TestSearchNews(t *testing.T) {
	repo, database := newTestRepository(t)
	seedCategory(t, database, "klub", 8)
	ctx := context.Background()

	// matches on the English title, ignoring case
	items, err := repo.SearchNews(ctx, "KLUB 03 EN", 5)
	if err != nil {
		t.Fatalf("SearchNews: %v", err)
	}
	if len(items) != 1 || items[0].Slug != "klub-03" {
		t.Fatalf("items = %+v, want klub-03", items)
	}

	items, err = repo.SearchNews(ctx, "klub", 5)
	if err != nil {
		t.Fatalf("SearchNews: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("len = %d, want the limit of 5", len(items))
	}

	items, err = repo.SearchNews(ctx, "%", 5)
	if err != nil {
		t.Fatalf("SearchNews: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("%% matched %d articles, want it treated literally", len(items))
	}
}
