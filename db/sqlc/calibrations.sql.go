package db

import (
	"context"

	"github.com/lib/pq"
)

const createCalibration = `-- name: CreateCalibration :one
INSERT INTO calibrations (date, b, drifts, curve, fitted, sse, converged)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, date, b, drifts, curve, fitted, sse, converged
`

type CreateCalibrationParams struct {
	Date      string    `json:"date"`
	B         float64   `json:"b"`
	Drifts    []float64 `json:"drifts"`
	Curve     []float64 `json:"curve"`
	Fitted    []float64 `json:"fitted"`
	Sse       float64   `json:"sse"`
	Converged bool      `json:"converged"`
}

func (q *Queries) CreateCalibration(ctx context.Context, arg CreateCalibrationParams) (Calibration, error) {
	row := q.db.QueryRowContext(ctx, createCalibration,
		arg.Date,
		arg.B,
		pq.Array(arg.Drifts),
		pq.Array(arg.Curve),
		pq.Array(arg.Fitted),
		arg.Sse,
		arg.Converged,
	)
	var i Calibration
	err := row.Scan(
		&i.ID,
		&i.Date,
		&i.B,
		pq.Array(&i.Drifts),
		pq.Array(&i.Curve),
		pq.Array(&i.Fitted),
		&i.Sse,
		&i.Converged,
	)
	return i, err
}

const getLatestCalibration = `-- name: GetLatestCalibration :one
SELECT id, date, b, drifts, curve, fitted, sse, converged FROM calibrations
ORDER BY id DESC LIMIT 1
`

func (q *Queries) GetLatestCalibration(ctx context.Context) (Calibration, error) {
	row := q.db.QueryRowContext(ctx, getLatestCalibration)
	var i Calibration
	err := row.Scan(
		&i.ID,
		&i.Date,
		&i.B,
		pq.Array(&i.Drifts),
		pq.Array(&i.Curve),
		pq.Array(&i.Fitted),
		&i.Sse,
		&i.Converged,
	)
	return i, err
}

const pruneCalibrations = `-- name: PruneCalibrations :exec
DELETE FROM calibrations
WHERE id NOT IN (SELECT id FROM calibrations ORDER BY id DESC LIMIT $1)
`

func (q *Queries) PruneCalibrations(ctx context.Context, keep int32) error {
	_, err := q.db.ExecContext(ctx, pruneCalibrations, keep)
	return err
}
