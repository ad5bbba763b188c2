package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type dbUser struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

type dbProfile struct {
	UserID        int64
	DateOfBirth   *time.Time
	Country       *string
	ContactNumber *string
	Pincode       *string
	AddressLine1  *string
	AddressLine2  *string
	Landmark      *string
	City          *string
	State         *string
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// selectUserByEmail returns nil without error when no account matches.
// Email comparison is case-sensitive exact match.
func selectUserByEmail(ctx context.Context, q rowQuerier, email string) (*dbUser, error) {
	var u dbUser
	err := q.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func insertUser(ctx context.Context, tx pgx.Tx, u *dbUser) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Email, u.PasswordHash, u.FirstName, u.LastName).Scan(&id)
	return id, err
}

func insertEmptyProfile(ctx context.Context, tx pgx.Tx, userID int64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO profiles (user_id) VALUES ($1)
	`, userID)
	return err
}

func selectProfileByUserID(ctx context.Context, q rowQuerier, userID int64) (*dbProfile, error) {
	var p dbProfile
	err := q.QueryRow(ctx, `
		SELECT user_id, date_of_birth, country, contact_number, pincode,
			address_line1, address_line2, landmark, city, state
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(
		&p.UserID,
		&p.DateOfBirth,
		&p.Country,
		&p.ContactNumber,
		&p.Pincode,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.Landmark,
		&p.City,
		&p.State,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func updateUserNames(ctx context.Context, tx pgx.Tx, userID int64, firstName, lastName string) error {
	_, err := tx.Exec(ctx, `
		UPDATE users SET first_name = $2, last_name = $3 WHERE id = $1
	`, userID, firstName, lastName)
	return err
}

// upsertProfile fully replaces every profile field. Registration always
// creates the profile row, but the upsert also covers rows that predate
// that guarantee.
func upsertProfile(ctx context.Context, tx pgx.Tx, p *dbProfile) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO profiles (user_id, date_of_birth, country, contact_number,
			pincode, address_line1, address_line2, landmark, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			date_of_birth = EXCLUDED.date_of_birth,
			country = EXCLUDED.country,
			contact_number = EXCLUDED.contact_number,
			pincode = EXCLUDED.pincode,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			landmark = EXCLUDED.landmark,
			city = EXCLUDED.city,
			state = EXCLUDED.state
	`,
		p.UserID,
		p.DateOfBirth,
		p.Country,
		p.ContactNumber,
		p.Pincode,
		p.AddressLine1,
		p.AddressLine2,
		p.Landmark,
		p.City,
		p.State,
	)
	return err
}
