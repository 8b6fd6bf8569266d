package envelope

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of derived conversation keys and the minimum
	// length of the master secret.
	KeySize = 32
	// SaltSize is the length of per-conversation key salts.
	SaltSize = 32

	conversationInfoPrefix = "umc:conv:"
)

// KeyDeriver derives per-conversation keys from a deployment master secret.
type KeyDeriver struct {
	master []byte
}

// NewKeyDeriver returns a KeyDeriver for the given master secret.
func NewKeyDeriver(master []byte) (*KeyDeriver, error) {
	if len(master) < KeySize {
		return nil, fmt.Errorf("master secret must be at least %d bytes (got %d)", KeySize, len(master))
	}
	return &KeyDeriver{master: append([]byte(nil), master...)}, nil
}

// DeriveKey expands the master secret with HKDF-SHA256 using the conversation
// salt and the conversation id as context. The result is never persisted.
func (d *KeyDeriver) DeriveKey(salt []byte, conversationID int64) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("conversation salt required")
	}

	info := []byte(conversationInfoPrefix + strconv.FormatInt(conversationID, 10))
	reader := hkdf.New(sha256.New, d.master, salt, info)

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive conversation key: %w", err)
	}
	return key, nil
}

// NewSalt returns SaltSize bytes from the system CSPRNG.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate conversation salt: %w", err)
	}
	return salt, nil
}

// Zero overwrites key material in-place.
func Zero(b []byte) {
	clear(b)
}
