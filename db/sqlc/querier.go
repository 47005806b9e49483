package db

import (
	"context"
)

type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUser(ctx context.Context, prefix string) (User, error)
	CreateCalibration(ctx context.Context, arg CreateCalibrationParams) (Calibration, error)
	GetLatestCalibration(ctx context.Context) (Calibration, error)
	PruneCalibrations(ctx context.Context, keep int32) error
}

var _ Querier = (*Queries)(nil)
