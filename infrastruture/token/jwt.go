package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/ilhamhanifan/maze-solver/service/i"
)

// Claim keys carried by API client tokens.
const (
	ClaimSubject = "sub"
	ClaimScopes  = "scopes"
	ClaimIssuer  = "iss"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnexpectedSigning = errors.New("unexpected signing method")
	ErrWrongIssuer       = errors.New("token issued by someone else")
)

// JwtService handles JWT operations.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a signed token for subject with the given scopes.
func (s *JwtService) Generate(subject string, scopes []string, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{
		ClaimSubject: subject,
		ClaimScopes:  scopes,
		ClaimIssuer:  s.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(expTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedSigning
	}
	return []byte(s.secretKey), nil
}

// HasScope reports whether decoded claims grant scope.
func HasScope(claims map[string]interface{}, scope string) bool {
	raw, ok := claims[ClaimScopes].([]interface{})
	if !ok {
		return false
	}
	for _, s := range raw {
		if s == scope {
			return true
		}
	}
	return false
}
