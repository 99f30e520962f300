// Package cryptox hashes and verifies user passwords with Argon2id.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/gyulist/gyulist/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt using Argon2id
// (1 pass, 64 MiB, 4 lanes, 32-byte output).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// HashPassword returns hex-encoded hash and salt suitable for the users table.
func HashPassword(password string) (hash string, salt string) {
	s := common.GenerateRandByteArray(saltSize)
	key := DeriveKey([]byte(password), s)
	return hex.EncodeToString(key), hex.EncodeToString(s)
}

// VerifyPassword reports whether password matches the stored hex hash/salt pair.
func VerifyPassword(password, hash, salt string) (bool, error) {
	want, err := hex.DecodeString(hash)
	if err != nil || len(want) != keySize {
		return false, ErrMalformedHash
	}
	s, err := hex.DecodeString(salt)
	if err != nil || len(s) == 0 {
		return false, ErrMalformedHash
	}

	got := DeriveKey([]byte(password), s)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
