package auth

import (
	"livecontent/internal/common"

	"golang.org/x/crypto/bcrypt"
)

// CheckPassword compares a candidate password against the configured bcrypt
// hash. Returns common.ErrInvalidCredentials on mismatch; the error never
// indicates how close the candidate was.
func CheckPassword(passwordHash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the ADMIN_PASSWORD_HASH
// setting. Used by the CLI helper, never at request time.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
