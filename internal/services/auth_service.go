package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an operator credential pair. It sits behind
// an interface so the single-operator check can be swapped for a real
// identity provider without touching calling code.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier verifies the one configured operator. The password is
// held only as a bcrypt hash.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticVerifier hashes the configured operator password and returns
// the verifier.
func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator password: %w", err)
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Verify reports whether the pair matches the configured operator.
func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}

// AuthService handles operator login and session tokens. The services it
// gates perform no authorization checks of their own; they trust that
// only authenticated requests reach them.
type AuthService struct {
	verifier   CredentialVerifier
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(verifier CredentialVerifier, jwtSecret string) *AuthService {
	return &AuthService{
		verifier:   verifier,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Login verifies the operator credentials and returns a signed JWT.
func (s *AuthService) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		// Do not reveal which part of the pair was wrong.
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
