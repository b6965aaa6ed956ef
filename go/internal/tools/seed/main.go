package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mcdev12/clubsite/go/internal/dbconfig"
)

func main() {
	path := flag.String("fixture", "go/internal/assets/club.yaml", "YAML fixture to load")
	flag.Parse()

	_ = godotenv.Load()

	// 1) Load the fixture
	fixture, err := loadFixture(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert table by table and count
	failed := false
	for _, t := range fixture.tables(time.Now()) {
		var (
			total    = len(t.rows)
			inserted int
			skipped  int
			errs     int
		)
		query := t.insertSQL()
		for _, r := range t.rows {
			cmdTag, err := pool.Exec(ctx, query, r.args...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error inserting %s %s: %v\n", t.name, r.id, err)
				errs++
				continue
			}
			if cmdTag.RowsAffected() == 1 {
				inserted++
			} else {
				skipped++
			}
		}

		// 4) Print summary
		fmt.Printf("%s seed complete: %d total, %d inserted, %d skipped, %d errors\n",
			t.name, total, inserted, skipped, errs)
		if errs > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
