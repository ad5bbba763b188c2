package http

import "github.com/zenkart/backend/user"

const dateFormat = "2006-01-02"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	DateOfBirth   *string `json:"date_of_birth"`
	Country       *string `json:"country"`
	ContactNumber *string `json:"contact_number"`
	Pincode       *string `json:"pincode"`
	AddressLine1  *string `json:"address_line1"`
	AddressLine2  *string `json:"address_line2"`
	Landmark      *string `json:"landmark"`
	City          *string `json:"city"`
	State         *string `json:"state"`
}

type userResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Profile   *profileResponse `json:"profile"`
}

func mapUser(u *user.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.Profile != nil {
		var dob *string
		if u.Profile.DateOfBirth != nil {
			s := u.Profile.DateOfBirth.Format(dateFormat)
			dob = &s
		}
		resp.Profile = &profileResponse{
			DateOfBirth:   dob,
			Country:       u.Profile.Country,
			ContactNumber: u.Profile.ContactNumber,
			Pincode:       u.Profile.Pincode,
			AddressLine1:  u.Profile.AddressLine1,
			AddressLine2:  u.Profile.AddressLine2,
			Landmark:      u.Profile.Landmark,
			City:          u.Profile.City,
			State:         u.Profile.State,
		}
	}
	return resp
}
