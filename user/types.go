package user

import "time"

type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Profile   *Profile
}

// Profile is attached to every account at registration with all fields
// empty; a profile update fills (or fully replaces) them. Landmark is the
// only field updates may leave unset.
type Profile struct {
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
