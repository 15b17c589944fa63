package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"etalase/internal/services"
)

func TestStaticVerifier(t *testing.T) {
	verifier, err := services.NewStaticVerifier("operator", "s3cret")
	assert.NoError(t, err)

	assert.True(t, verifier.Verify("operator", "s3cret"))
	assert.False(t, verifier.Verify("operator", "wrong"))
	assert.False(t, verifier.Verify("someone", "s3cret"))
	assert.False(t, verifier.Verify("", ""))
}

func TestAuthService_Login(t *testing.T) {
	verifier, err := services.NewStaticVerifier("operator", "s3cret")
	assert.NoError(t, err)
	authService := services.NewAuthService(verifier, "test_jwt_secret")

	token, err := authService.Login("operator", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "operator", claims["username"])
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	verifier, err := services.NewStaticVerifier("operator", "s3cret")
	assert.NoError(t, err)
	authService := services.NewAuthService(verifier, "test_jwt_secret")

	token, err := authService.Login("operator", "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	verifier, err := services.NewStaticVerifier("operator", "s3cret")
	assert.NoError(t, err)
	authService := services.NewAuthService(verifier, "test_jwt_secret")

	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret must be rejected.
	other := services.NewAuthService(verifier, "other_secret")
	token, err := other.Login("operator", "s3cret")
	assert.NoError(t, err)
	_, err = authService.ValidateToken(token)
	assert.Error(t, err)
}
