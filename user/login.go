package user

import (
	"context"

	"github.com/zenkart/backend/auth"
)

// Login validates credentials and issues a fresh bearer token. Unknown
// email and wrong password return the same error.
func (s *UserSrvc) Login(ctx context.Context, email, password string) (string, error) {
	row, err := selectUserByEmail(ctx, s.pg, email)
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	if row == nil || !auth.CheckPassword(password, row.PasswordHash) {
		return "", newErrInvalidCredentials()
	}

	token, err := s.codec.Encode(auth.Identity{
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
	})
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	return token, nil
}
