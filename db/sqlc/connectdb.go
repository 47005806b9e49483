package db

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// ConnectDB opens and pings the database pool for the given driver and
// source string.
func ConnectDB(driver, source string) (*sql.DB, error) {
	conn, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}
