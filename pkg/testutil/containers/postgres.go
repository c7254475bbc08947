//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/fridayblessings411-cell/AgroTour/internal/platform/postgres"
)

// PostgresContainer wraps a migrated testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts Postgres and applies the registry migrations.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("agrotour"),
		tcpostgres.WithUsername("agrotour"),
		tcpostgres.WithPassword("agrotour"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := postgres.Open(ctx, url, 20)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to migrate postgres: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		URL:       url,
		DB:        db,
	}
}

// TruncateTables empties the named tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	return err
}
