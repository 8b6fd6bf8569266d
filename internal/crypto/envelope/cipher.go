package envelope

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the length of the per-message nonce.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the length of the authentication tag.
	TagSize = chacha20poly1305.Overhead
)

// ErrAuthentication is returned when a sealed message fails verification.
var ErrAuthentication = errors.New("message authentication failed")

// Sealed is an encrypted message with its detached nonce and tag.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
}

type aadFields struct {
	ConversationID int64 `cbor:"c"`
	SenderID       int64 `cbor:"s"`
}

var aadEncoder cbor.EncMode

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("init aad encoder: %w", err))
	}
	aadEncoder = em
}

// AAD returns the associated data binding a message to its conversation and
// sender. The encoding is deterministic so it can be rebuilt on read.
func AAD(conversationID, senderID int64) ([]byte, error) {
	blob, err := aadEncoder.Marshal(aadFields{ConversationID: conversationID, SenderID: senderID})
	if err != nil {
		return nil, fmt.Errorf("encode aad: %w", err)
	}
	return blob, nil
}

// EqualAAD reports whether two associated data blobs are identical.
func EqualAAD(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Seal encrypts plaintext under key with a fresh random nonce.
func Seal(key, plaintext, aad []byte) (Sealed, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Sealed{}, fmt.Errorf("init cipher: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	out := aead.Seal(nil, nonce, plaintext, aad)
	split := len(out) - TagSize

	return Sealed{
		Ciphertext: out[:split:split],
		Nonce:      nonce,
		Tag:        out[split:],
	}, nil
}

// Open verifies and decrypts a sealed message. No plaintext is returned
// unless the tag verifies.
func Open(key []byte, sealed Sealed, aad []byte) ([]byte, error) {
	if len(sealed.Nonce) != NonceSize || len(sealed.Tag) != TagSize {
		return nil, ErrAuthentication
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	in := make([]byte, 0, len(sealed.Ciphertext)+TagSize)
	in = append(in, sealed.Ciphertext...)
	in = append(in, sealed.Tag...)

	plaintext, err := aead.Open(nil, sealed.Nonce, in, aad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
