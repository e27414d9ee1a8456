package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"

	// TokenTTL is the validity window of an issued token.
	TokenTTL = time.Hour
)

// Token validation failure kinds. The access guard collapses all of them to a
// single external response, but callers and tests can tell them apart.
var (
	ErrTokenMissing   = errors.New("token missing")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)

// TokenService issues and validates signed, time-limited bearer tokens.
// Tokens are stateless: there is no revocation before expiry.
type TokenService struct {
	secret []byte

	// now is the clock used at issuance; overridable in tests.
	now func() time.Time
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// NewTokenServiceAt returns a TokenService whose issuance clock is supplied
// by now. Lets callers mint tokens at a chosen point in time.
func NewTokenServiceAt(secret string, now func() time.Time) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    now,
	}
}

// Issue creates an HS256-signed token for the given subject, valid for TokenTTL.
func (s *TokenService) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": tokenIssuer,                            // Issuer
		"aud": tokenAudience,                          // Audience
		"exp": now.Add(TokenTTL).Unix(),               // Expiration
		"iat": now.Unix(),                             // Issued at
		"nbf": now.Unix(),                             // Not before
		"jti": uuid.New().String(),                    // JWT ID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token string and returns the subject user ID.
// Failures map onto ErrTokenMissing, ErrTokenExpired, ErrTokenSignature, or
// ErrTokenMalformed.
func (s *TokenService) Validate(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return 0, ErrTokenSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrTokenMalformed
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrTokenMalformed
	}

	return uint(userID), nil
}
