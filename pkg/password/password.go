package password

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// Invalid is returned when a raw password does not match its stored hash.
var Invalid = errors.New("[password] - invalid credentials")

// Raw is a plaintext password. It should be hashed as soon as possible and
// never persisted.
type Raw string

func (r Raw) Hash() (Hashed, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r), bcrypt.DefaultCost)
	return Hashed(hash), err
}

// Hashed is a bcrypt hash of a Raw password.
type Hashed []byte

func (h Hashed) Validate(r Raw) error {
	if err := bcrypt.CompareHashAndPassword(h, []byte(r)); err != nil {
		return errors.CombineErrors(Invalid, err)
	}
	return nil
}
