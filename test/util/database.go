// Package util holds shared helpers for database-backed tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Boomerang-Apps/wave/ent"
)

var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase hands each test its own Postgres schema on a shared
// database: CI points at an external server via CI_DATABASE_URL, local runs
// start one testcontainer per package. The schema (and everything in it) is
// dropped on cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := sharedDatabase(t)
	schema := testSchemaName(t)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	_ = admin.Close()

	// search_path in the conn string applies to every pooled connection
	db, err := stdsql.Open("pgx", withSearchPath(connStr, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))

	// tables come from ent's migration engine here; the golang-migrate path
	// is exercised only by the server
	require.NoError(t, client.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
		_ = client.Close()
		_ = db.Close()
	})
	return client, db
}

func sharedDatabase(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}
	containerOnce.Do(func() {
		ctx := context.Background()
		pg, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		sharedConnStr, containerErr = pg.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, containerErr)
	require.NotEmpty(t, sharedConnStr)
	return sharedConnStr
}

// testSchemaName derives a unique, Postgres-legal schema name from the test
// name plus a random suffix (subtests share a name prefix).
func testSchemaName(t *testing.T) string {
	buf := make([]byte, 4)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	name := strings.ToLower(t.Name())
	name = strings.NewReplacer("/", "_", " ", "_", "-", "_", "#", "_").Replace(name)
	if len(name) > 32 {
		name = name[:32]
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(buf))
}

func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
