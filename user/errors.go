package user

import (
	"fmt"
	"net/http"

	"github.com/zenkart/backend/srvcerror"
)

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"an account with this email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

// newErrInvalidCredentials is returned for both an unknown email and a
// wrong password so that the two cases are indistinguishable to the
// caller.
func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"email or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeEmailEmpty = "email_empty"

func newErrEmailEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailEmpty,
		"email must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email is not a valid address",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailTooLong = "email_too_long"

func newErrEmailTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailTooLong,
		"email is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNameRequired = "name_required"

func newErrNameRequired(field string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameRequired,
		fmt.Sprintf("%s must not be empty", field),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNameTooLong = "name_too_long"

func newErrNameTooLong(field string, maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameTooLong,
		fmt.Sprintf("%s must not be longer than %d characters", field, maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeProfileFieldRequired = "profile_field_required"

func newErrProfileFieldRequired(field string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProfileFieldRequired,
		fmt.Sprintf("%s is required", field),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
