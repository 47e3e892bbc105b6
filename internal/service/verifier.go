package service

import (
	"context"

	"edge-ai-be/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a login attempt may proceed. The demo
// deployment accepts any password; a deployment that wants a gate can swap
// in the bcrypt variant without touching the auth flow.
type CredentialVerifier interface {
	Verify(ctx context.Context, user *entity.User, password string) error
}

// AcceptAllVerifier approves every attempt. Matches the demo contract where
// the password field is decorative.
type AcceptAllVerifier struct{}

func (AcceptAllVerifier) Verify(ctx context.Context, user *entity.User, password string) error {
	return nil
}

// SharedSecretVerifier checks the supplied password against a single bcrypt
// hash shared by all accounts. Useful for gating a public demo instance.
type SharedSecretVerifier struct {
	hash []byte
}

func NewSharedSecretVerifier(hash string) *SharedSecretVerifier {
	return &SharedSecretVerifier{hash: []byte(hash)}
}

func (v *SharedSecretVerifier) Verify(ctx context.Context, user *entity.User, password string) error {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(password))
}
