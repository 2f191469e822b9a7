package auth

import (
	"github.com/arya-analytics/wall/pkg/password"
	"github.com/google/uuid"
)

// InsecureCredentials hold a plaintext password, and should only live for
// the duration of a single request.
type InsecureCredentials struct {
	Username string       `json:"username"`
	Password password.Raw `json:"password"`
}

// SecureCredentials are the persisted form of a registered entity.
type SecureCredentials struct {
	Key      uuid.UUID       `json:"key"`
	Username string          `json:"username"`
	Password password.Hashed `json:"password"`
}

// Authenticator is an interface for validating the identity of a particular
// entity (i.e. they are who they say they are).
type Authenticator interface {
	// Authenticate validates the identity of the entity with the given
	// credentials, returning its stored credentials on success. If the
	// credentials are invalid, an InvalidCredentials error is returned.
	Authenticate(creds InsecureCredentials) (SecureCredentials, error)
	// Register registers the given credentials in the authenticator,
	// assigning the entity a fresh key.
	Register(creds InsecureCredentials) (SecureCredentials, error)
	// UpdateUsername updates the username of the given credentials.
	UpdateUsername(creds InsecureCredentials, newUser string) error
	// UpdatePassword updates the password of the given credentials.
	UpdatePassword(creds InsecureCredentials, newPass password.Raw) error
}
