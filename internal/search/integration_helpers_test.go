package search_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/saleorbridge/saleorbridge/internal/search"
)

type dbFactory struct {
	name    string
	newRepo func(t *testing.T) *search.Repo
}

var drivers []dbFactory

func TestMain(m *testing.M) {
	ctx := context.Background()

	// Start PostgreSQL container.
	pgConnStr, pgContainer, err := startPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	// Register drivers.
	drivers = append(drivers, dbFactory{
		name:    "sqlite",
		newRepo: newSQLiteRepo,
	})
	drivers = append(drivers, dbFactory{
		name:    "postgres",
		newRepo: newPostgresRepo(pgConnStr),
	})

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed to terminate postgres container: %v\n", err)
		}
	}

	os.Exit(code)
}
