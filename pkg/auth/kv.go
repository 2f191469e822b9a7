package auth

import (
	"encoding/json"

	"github.com/arya-analytics/wall/pkg/password"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

// KV is a simple key-value backed Authenticator. It saves credentials to
// the provided pebble DB under a dedicated key prefix.
type KV struct{ DB *pebble.DB }

var _ Authenticator = (*KV)(nil)

const credentialsPrefix = "auth/"

// Authenticate implements the Authenticator interface.
func (db *KV) Authenticate(creds InsecureCredentials) (SecureCredentials, error) {
	sc, err := db.retrieve(creds.Username)
	if err != nil {
		return sc, err
	}
	return sc, sc.Password.Validate(creds.Password)
}

// Register implements the Authenticator interface.
func (db *KV) Register(creds InsecureCredentials) (SecureCredentials, error) {
	var sc SecureCredentials
	exists, err := db.exists(creds.Username)
	if err != nil {
		return sc, err
	}
	if exists {
		return sc, UniqueViolation
	}
	hash, err := creds.Password.Hash()
	if err != nil {
		return sc, err
	}
	sc = SecureCredentials{Key: uuid.New(), Username: creds.Username, Password: hash}
	return sc, db.set(sc)
}

// UpdateUsername implements the Authenticator interface.
func (db *KV) UpdateUsername(creds InsecureCredentials, newUser string) error {
	sc, err := db.Authenticate(creds)
	if err != nil {
		return err
	}
	exists, err := db.exists(newUser)
	if err != nil {
		return err
	}
	if exists {
		return UniqueViolation
	}
	if err := db.DB.Delete(credentialsKey(sc.Username), pebble.Sync); err != nil {
		return err
	}
	sc.Username = newUser
	return db.set(sc)
}

// UpdatePassword implements the Authenticator interface.
func (db *KV) UpdatePassword(creds InsecureCredentials, newPass password.Raw) error {
	sc, err := db.Authenticate(creds)
	if err != nil {
		return err
	}
	hash, err := newPass.Hash()
	if err != nil {
		return err
	}
	sc.Password = hash
	return db.set(sc)
}

func credentialsKey(username string) []byte {
	return []byte(credentialsPrefix + username)
}

func (db *KV) exists(username string) (bool, error) {
	_, closer, err := db.DB.Get(credentialsKey(username))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (db *KV) retrieve(username string) (SecureCredentials, error) {
	var sc SecureCredentials
	data, closer, err := db.DB.Get(credentialsKey(username))
	if errors.Is(err, pebble.ErrNotFound) {
		return sc, InvalidCredentials
	}
	if err != nil {
		return sc, err
	}
	if err := json.Unmarshal(data, &sc); err != nil {
		return sc, errors.CombineErrors(err, closer.Close())
	}
	return sc, closer.Close()
}

func (db *KV) set(sc SecureCredentials) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return db.DB.Set(credentialsKey(sc.Username), data, pebble.Sync)
}
