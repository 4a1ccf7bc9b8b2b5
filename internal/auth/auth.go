// Package auth implements the single-user login gate. Credentials come from
// the config file; only a hash of the password is kept.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("auth: invalid username or password")

type Service struct {
	username     string
	passwordHash string
}

func NewService(username, passwordHash string) *Service {
	return &Service{
		username:     strings.TrimSpace(username),
		passwordHash: strings.TrimSpace(passwordHash),
	}
}

func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks the supplied credentials. Both comparisons are constant time
// and both always run, so a wrong username costs the same as a wrong
// password.
func (s *Service) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(s.passwordHash))
	if userOK&passOK != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
