// Package database provides the shared test database client helper.
package database

import (
	"testing"

	wavedb "github.com/Boomerang-Apps/wave/pkg/database"
	"github.com/Boomerang-Apps/wave/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer. The connection
// is cleaned up automatically when the test ends.
func NewTestClient(t *testing.T) *wavedb.Client {
	entClient, db := util.SetupTestDatabase(t)
	return wavedb.NewClientFromEnt(entClient, db)
}
