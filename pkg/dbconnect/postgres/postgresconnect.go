package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"gosystembolaget_api/config"
)

const maxRetries = 10
const dbMaxOpenConns = 20
const dbMaxIdleConns = 5
const retryDelay = 5 * time.Second

// PostgresDatabase hands out a single shared *sql.DB, retrying the
// initial connection until the database accepts it.
type PostgresDatabase struct {
	config.DatabaseConfig
	db *sql.DB
	mu sync.Mutex
}

func NewPgConnector(dbConfig config.DatabaseConfig) *PostgresDatabase {
	return &PostgresDatabase{DatabaseConfig: dbConfig}
}

func (pg *PostgresDatabase) Connect() (*sql.DB, error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db != nil {
		return pg.db, nil
	}

	var err error
	conStr := pg.GetConnectionString()

	for i := 0; i < maxRetries; i++ {
		pg.db, err = sql.Open("postgres", conStr)
		if err != nil {
			log.Printf("Failed to open Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		pg.db.SetMaxOpenConns(dbMaxOpenConns)
		pg.db.SetMaxIdleConns(dbMaxIdleConns)

		if err = pg.db.Ping(); err != nil {
			log.Printf("Failed to ping Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			pg.db.Close()
			time.Sleep(retryDelay)
			continue
		}

		log.Printf("Successfully connected to Postgres")
		return pg.db, nil
	}
	return nil, err
}

func (pg *PostgresDatabase) Ping() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return fmt.Errorf("database connection is not established")
	}

	if err := pg.db.Ping(); err != nil {
		pg.db.Close()
		pg.db = nil
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}
