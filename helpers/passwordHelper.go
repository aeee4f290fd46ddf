package helpers

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(bytes), nil
}

func VerifyPassword(hashed, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(provided)) == nil
}
