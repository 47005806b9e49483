package db

import (
	"context"
)

const createUser = `-- name: CreateUser :one
INSERT INTO registrar (email_address, prefix, token, generated_at, expired_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING email_address, prefix, token, generated_at, expired_at
`

type CreateUserParams struct {
	EmailAddress string `json:"email_address"`
	Prefix       string `json:"prefix"`
	Token        string `json:"token"`
	GeneratedAt  string `json:"generated_at"`
	ExpiredAt    string `json:"expired_at"`
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.EmailAddress,
		arg.Prefix,
		arg.Token,
		arg.GeneratedAt,
		arg.ExpiredAt,
	)
	var i User
	err := row.Scan(
		&i.EmailAddress,
		&i.Prefix,
		&i.Token,
		&i.GeneratedAt,
		&i.ExpiredAt,
	)
	return i, err
}

const getUser = `-- name: GetUser :one
SELECT email_address, prefix, token, generated_at, expired_at FROM registrar
WHERE prefix = $1 LIMIT 1
`

func (q *Queries) GetUser(ctx context.Context, prefix string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUser, prefix)
	var i User
	err := row.Scan(
		&i.EmailAddress,
		&i.Prefix,
		&i.Token,
		&i.GeneratedAt,
		&i.ExpiredAt,
	)
	return i, err
}
