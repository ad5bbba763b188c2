package user

import (
	"context"
	"errors"
	"net/mail"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zenkart/backend/auth"
)

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates an account with an empty attached profile and returns
// a freshly issued bearer token for the new identity.
func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (string, error) {
	if err := validateEmail(p.Email); err != nil {
		return "", err
	}
	if err := validatePassword(p.Password); err != nil {
		return "", err
	}
	if err := validateName("first name", p.FirstName); err != nil {
		return "", err
	}
	if err := validateName("last name", p.LastName); err != nil {
		return "", err
	}

	existing, err := selectUserByEmail(ctx, s.pg, p.Email)
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}
	if existing != nil {
		return "", newErrEmailExists()
	}

	passwordHash, err := auth.HashPassword(p.Password)
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	tx, err := s.pg.Begin(ctx)
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}
	defer tx.Rollback(ctx)

	userID, err := insertUser(ctx, tx, &dbUser{
		Email:        p.Email,
		PasswordHash: passwordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
	})
	if err != nil {
		// the unique index backstops concurrent registrations that both
		// passed the lookup above
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", newErrEmailExists()
		}
		return "", newErrInternalSE().SetDebug(err)
	}

	if err := insertEmptyProfile(ctx, tx, userID); err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	token, err := s.codec.Encode(auth.Identity{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	})
	if err != nil {
		return "", newErrInternalSE().SetDebug(err)
	}

	return token, nil
}

// Validation functions
func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) == 0 {
		return newErrEmailEmpty()
	}
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return newErrEmailInvalid()
	}

	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}

func validateName(field, value string) error {
	const maxNameLength = 35
	if len(value) == 0 {
		return newErrNameRequired(field)
	}
	if len(value) > maxNameLength {
		return newErrNameTooLong(field, maxNameLength)
	}
	return nil
}
