package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidJWTSettings is returned by Issue when the manager lacks an
	// issuer, a key or a positive lifetime, or the user id is empty.
	ErrInvalidJWTSettings = errors.New("invalid params for generating JWT Token")
)

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// JWTManager issues and verifies HS256 access tokens whose subject is the
// user id.
type JWTManager struct {
	issuer  string
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewJWTManager(issuer, signKey string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		issuer:  issuer,
		signKey: []byte(signKey),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue signs a token for userID carrying iss, sub, iat and exp.
func (m *JWTManager) Issue(userID string) (models.Token, error) {
	if m.issuer == "" || len(m.signKey) == 0 || m.ttl <= 0 || userID == "" {
		return models.Token{}, ErrInvalidJWTSettings
	}

	issuedAt := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// Parse verifies signature, issuer and expiry of raw and returns the token
// with UserID filled from the subject. Only HMAC algorithms are accepted.
func (m *JWTManager) Parse(raw string) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods(hmacMethods),
		jwt.WithTimeFunc(m.now),
	)

	var claims jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating JWT token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, errors.New("token subject is empty")
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: raw, UserID: claims.Subject}, nil
}

// ParseBearerToken returns the token part of "<scheme> <token>". The scheme
// is not checked.
func ParseBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
