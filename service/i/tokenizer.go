package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding API client tokens.
type Tokenizer interface {
	// Generate creates a token for subject granting scopes, valid for expTime.
	Generate(subject string, scopes []string, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
