// ABOUTME: User registration and login over the persistence gateway.
// ABOUTME: Passwords hashed with bcrypt; no plaintext ever stored.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email or password don't match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the persistence gateway auth needs.
type UserStore interface {
	SaveUser(u *models.User) error
	GetUserByEmail(email string) (*models.User, error)
}

// Register creates a user with a bcrypt password hash and returns it with
// its assigned id.
func Register(s UserStore, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.NewUser(username, email, string(hash))
	if err := s.SaveUser(u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}

// Authenticate verifies email/password and stamps last_login on success.
// Unknown email and wrong password both return ErrInvalidCredentials.
func Authenticate(s UserStore, email, password string) (*models.User, error) {
	u, err := s.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	u.LastLogin = &now
	if err := s.SaveUser(u); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return u, nil
}
