package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Calibration rows kept by RecordCalibration; older runs are pruned.
const keepCalibrations = 100

// Store defines all functions to execute db queries and transactions.
type Store interface {
	Querier
	RecordCalibration(ctx context.Context, arg CreateCalibrationParams) (Calibration, error)
}

// SQLStore provides all functions to execute SQL queries and transactions.
type SQLStore struct {
	db *sql.DB
	*Queries
}

// NewStore creates a new store.
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// execTx executes a function within a database transaction.
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// RecordCalibration inserts a calibration run and prunes history beyond the
// retention window within one transaction.
func (store *SQLStore) RecordCalibration(ctx context.Context, arg CreateCalibrationParams) (Calibration, error) {
	var result Calibration
	err := store.execTx(ctx, func(q *Queries) error {
		var err error
		result, err = q.CreateCalibration(ctx, arg)
		if err != nil {
			return err
		}
		return q.PruneCalibrations(ctx, keepCalibrations)
	})
	return result, err
}
