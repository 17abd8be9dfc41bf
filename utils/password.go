package utils

import (
	"errors"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	HasherBcrypt = "bcrypt"
	HasherArgon2 = "argon2"

	BcryptCost = 10
)

func HashPassword(password, hasher string) (string, error) {
	if hasher == HasherArgon2 {
		argon := argon2.DefaultConfig()
		encoded, err := argon.HashEncoded([]byte(password))
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword picks the algorithm from the encoded hash, so accounts
// created under either hasher keep working after PASSWORD_HASHER changes.
func VerifyPassword(encodedHash, password string) (bool, error) {
	if strings.HasPrefix(encodedHash, "$argon2") {
		return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	}

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
