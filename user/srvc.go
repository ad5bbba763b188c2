// Package user implements the auth service: account registration, login
// and profile management, issuing bearer tokens for authenticated
// identities.
package user

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zenkart/backend/auth"
)

type UserSrvc struct {
	pg    *pgxpool.Pool
	codec *auth.Codec
}

func NewUserSrvc(pg *pgxpool.Pool, codec *auth.Codec) *UserSrvc {
	return &UserSrvc{
		pg:    pg,
		codec: codec,
	}
}
