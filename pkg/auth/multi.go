package auth

import (
	"github.com/arya-analytics/wall/pkg/password"
	"github.com/cockroachdb/errors"
)

// MultiAuthenticator implements the Authenticator interface by wrapping a set of
// existing Authenticator(s). This is useful for combining multiple authentication
// sources into a single interface. Authenticator(s) are executed in order, and
// the first Authenticator to succeed is used for the operation.
type MultiAuthenticator []Authenticator

var _ Authenticator = MultiAuthenticator{}

// Authenticate implements the Authenticator interface.
func (a MultiAuthenticator) Authenticate(creds InsecureCredentials) (SecureCredentials, error) {
	for _, auth := range a {
		if sc, err := auth.Authenticate(creds); !errors.Is(err, InvalidCredentials) {
			return sc, err
		}
	}
	return SecureCredentials{}, InvalidCredentials
}

// Register implements the Authenticator interface.
func (a MultiAuthenticator) Register(creds InsecureCredentials) (SecureCredentials, error) {
	for _, auth := range a {
		if sc, err := auth.Register(creds); err == nil {
			return sc, nil
		}
	}
	return SecureCredentials{}, RegistrationFailed
}

// UpdateUsername implements the Authenticator interface.
func (a MultiAuthenticator) UpdateUsername(creds InsecureCredentials, newUser string) error {
	for _, auth := range a {
		if err := auth.UpdateUsername(creds, newUser); err == nil {
			return nil
		}
	}
	return errors.New("[auth] - failed to update username")
}

// UpdatePassword implements the Authenticator interface.
func (a MultiAuthenticator) UpdatePassword(
	creds InsecureCredentials,
	newPass password.Raw,
) error {
	for _, auth := range a {
		if err := auth.UpdatePassword(creds, newPass); err == nil {
			return nil
		}
	}
	return errors.New("[auth] - failed to update password")
}
