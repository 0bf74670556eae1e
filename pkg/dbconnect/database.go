package dbconnect

import "database/sql"

// Database is a connector that can also report liveness of an
// already-established connection.
type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
}
