// Package security provides password hashing and one-time-code generation.
package security

import (
	"github.com/matthewhartstonge/argon2"
)

var hashConfig = argon2.DefaultConfig()

// HashPassword produces a salted argon2id hash of the password in encoded
// PHC string format. A fresh random salt is drawn on every call, so hashing
// the same password twice yields different outputs. Safe for concurrent use.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
// The comparison inside the library is constant time. A malformed hash
// never matches and never returns an error.
func VerifyPassword(password, hash string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(hash))
	if err != nil {
		return false, nil
	}

	return ok, nil
}
