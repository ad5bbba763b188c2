package user

import (
	"context"
	"time"

	"github.com/zenkart/backend/srvcerror"
)

// GetProfile resolves the account behind a verified identity claim. A
// token that outlived its account maps to the same unauthorized response
// as any other verification failure.
func (s *UserSrvc) GetProfile(ctx context.Context, email string) (*User, error) {
	row, err := selectUserByEmail(ctx, s.pg, email)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, srvcerror.ErrUnauthorized()
	}

	profile, err := selectProfileByUserID(ctx, s.pg, row.ID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return buildUser(row, profile), nil
}

type UpdateProfileParams struct {
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	Country       string
	ContactNumber string
	Pincode       string
	AddressLine1  string
	AddressLine2  string
	Landmark      *string // optional
	City          string
	State         string
}

// UpdateProfile replaces every profile field from p in one transaction,
// plus the account's first and last name. It is a full replace, not a
// merge: a field omitted by the caller fails validation rather than
// silently keeping its old value. Email is never updatable.
func (s *UserSrvc) UpdateProfile(ctx context.Context, email string, p UpdateProfileParams) (*User, error) {
	if err := validateName("first name", p.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", p.LastName); err != nil {
		return nil, err
	}
	if err := validateProfileFields(p); err != nil {
		return nil, err
	}

	row, err := selectUserByEmail(ctx, s.pg, email)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, srvcerror.ErrUnauthorized()
	}

	tx, err := s.pg.Begin(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer tx.Rollback(ctx)

	if err := updateUserNames(ctx, tx, row.ID, p.FirstName, p.LastName); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	dob := p.DateOfBirth
	profile := &dbProfile{
		UserID:        row.ID,
		DateOfBirth:   &dob,
		Country:       &p.Country,
		ContactNumber: &p.ContactNumber,
		Pincode:       &p.Pincode,
		AddressLine1:  &p.AddressLine1,
		AddressLine2:  &p.AddressLine2,
		Landmark:      p.Landmark,
		City:          &p.City,
		State:         &p.State,
	}
	if err := upsertProfile(ctx, tx, profile); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row.FirstName = p.FirstName
	row.LastName = p.LastName
	return buildUser(row, profile), nil
}

func validateProfileFields(p UpdateProfileParams) error {
	if p.DateOfBirth.IsZero() {
		return newErrProfileFieldRequired("date of birth")
	}
	required := []struct {
		field string
		value string
	}{
		{"country", p.Country},
		{"contact number", p.ContactNumber},
		{"pincode", p.Pincode},
		{"address line 1", p.AddressLine1},
		{"address line 2", p.AddressLine2},
		{"city", p.City},
		{"state", p.State},
	}
	for _, r := range required {
		if r.value == "" {
			return newErrProfileFieldRequired(r.field)
		}
	}
	return nil
}

func buildUser(row *dbUser, profile *dbProfile) *User {
	u := &User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
	}
	if profile != nil {
		u.Profile = &Profile{
			DateOfBirth:   profile.DateOfBirth,
			Country:       profile.Country,
			ContactNumber: profile.ContactNumber,
			Pincode:       profile.Pincode,
			AddressLine1:  profile.AddressLine1,
			AddressLine2:  profile.AddressLine2,
			Landmark:      profile.Landmark,
			City:          profile.City,
			State:         profile.State,
		}
	}
	return u
}
