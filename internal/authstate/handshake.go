// Package authstate holds the short-lived server side of an OAuth
// redirect round-trip: the state value and the PKCE code verifier.
// Entries are one-time and TTL-bounded, so the login flow stays
// cookieless.
package authstate

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"
)

// TTL bounds how long a started login may sit before the callback
// arrives.
const TTL = 5 * time.Minute

// Handshake is one pending login: the state value doubles as the
// storage key, the verifier is released only to the matching callback.
type Handshake struct {
	State        string    `json:"state"`
	CodeVerifier string    `json:"code_verifier"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists pending handshakes. Consume must be one-shot: a
// state value that was consumed or never created is a miss.
type Store interface {
	Create(ctx context.Context, h Handshake) error
	Consume(ctx context.Context, state string) (*Handshake, error)
}

// New generates a fresh handshake and the PKCE code challenge to send
// along with the authorization redirect. State and verifier each carry
// 256 bits of entropy.
func New() (Handshake, string, error) {
	state, err := randomToken()
	if err != nil {
		return Handshake{}, "", fmt.Errorf("authstate: generate state: %w", err)
	}
	verifier, err := randomToken()
	if err != nil {
		return Handshake{}, "", fmt.Errorf("authstate: generate verifier: %w", err)
	}

	hash := sha256.Sum256([]byte(verifier))
	challenge := base64.RawURLEncoding.EncodeToString(hash[:])

	return Handshake{
		State:        state,
		CodeVerifier: verifier,
		CreatedAt:    time.Now().UTC(),
	}, challenge, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
