package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NgChau9803/RG-Ecom-BE/internal/models"
)

const testSecret = "test-signing-secret"

func testUser() *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "a@x.com",
		Role:  models.RoleSeller,
	}
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("")
	assert.ErrorIs(t, err, ErrMissingSecret)

	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)
	assert.NotNil(t, issuer)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	user := testUser()
	signed, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleSeller, claims.Role)
	assert.NotEmpty(t, claims.ID, "jti must be set")

	window := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TTL, window, "validity window is fixed at 7 days")
}

func TestIssueDefaultsRoleToBuyer(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	user := testUser()
	user.Role = ""
	signed, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, models.RoleBuyer, claims.Role)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)
	other, err := NewIssuer("a-different-secret")
	require.NoError(t, err)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	// Issue in the past so the 7-day window has already elapsed.
	issuedAt := time.Now().Add(-TTL - time.Hour)
	issuer.now = func() time.Time { return issuedAt }
	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Validate(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateJustInsideWindow(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	issuedAt := time.Now().Add(-TTL + time.Minute)
	issuer.now = func() time.Time { return issuedAt }
	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Validate(signed)
	assert.NoError(t, err)
}
