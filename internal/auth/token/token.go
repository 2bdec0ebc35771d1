// Package token issues and validates the signed bearer credential a
// client holds between requests. Expiry is the only lifecycle bound;
// there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/NgChau9803/RG-Ecom-BE/internal/models"
)

const (
	// TTL is the fixed validity window of every issued token.
	TTL = 7 * 24 * time.Hour

	issuerName = "rg-ecom-be"
)

var (
	ErrMissingSecret = errors.New("token: signing secret is not configured")
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: token has expired")
)

// Claims is the payload carried by a bearer token: identity id, email
// and role, plus the registered time bounds.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and validates bearer tokens with a process-wide HS256
// secret. It is immutable after construction and safe for concurrent
// use.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer fails fast when the secret is absent so the process never
// serves authenticated routes with an unsigned or weakly-signed token.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    TTL,
		now:    time.Now,
	}, nil
}

// Issue produces a signed credential for the reconciled identity.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := i.now()
	role := user.Role
	if role == "" {
		role = models.RoleBuyer
	}

	claims := &Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate checks signature and expiry against the issuing secret and
// returns the decoded claims.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return claims, nil
}
