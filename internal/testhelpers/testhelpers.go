package testhelpers

import (
	"database/sql"
	"os"
	"testing"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gosystembolaget_api/config"
)

// SetupTestDB opens the test database described by the POSTGRES_*
// environment variables, skipping the test when none is reachable.
// Integration tests stay runnable on any machine with a local Postgres
// and vanish quietly everywhere else.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	_ = godotenv.Load("../../../.env")

	cfg := config.GetPostgresConfig()
	if name := os.Getenv("POSTGRES_TEST_NAME"); name != "" {
		cfg.DBName = name
	}

	db, err := sql.Open("postgres", cfg.GetConnectionString())
	if err != nil {
		tb.Skip("Test database not available:", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		tb.Skip("Test database not available:", err)
	}

	tb.Cleanup(func() { db.Close() })
	return db
}
