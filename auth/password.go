package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from plain. The plaintext
// is never stored anywhere.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A mismatch is a
// false return, not an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
