package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Reason classifies why a session token was rejected.
type Reason string

const (
	ReasonMissing          Reason = "missing"
	ReasonMalformed        Reason = "malformed"
	ReasonExpired          Reason = "expired"
	ReasonSignatureInvalid Reason = "signature_invalid"
)

// AuthError is returned by Verify. Callers map every reason to a
// 401-class response.
type AuthError struct {
	Reason Reason
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token %s: %v", e.Reason, e.Err)
	}
	return "token " + string(e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed session tokens. Verification is a
// pure function of the token and the signing secret: no revocation list,
// no I/O, safe for unlimited parallel use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed, time-bounded credential bound to userID.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify resolves a token to the user id it was issued for, or fails
// with an AuthError describing why.
func (m *Manager) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", &AuthError{Reason: ReasonMissing}
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", &AuthError{Reason: classify(err), Err: err}
	}
	if !tkn.Valid || claims.UserID == "" {
		return "", &AuthError{Reason: ReasonMalformed}
	}
	return claims.UserID, nil
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ReasonSignatureInvalid
	default:
		return ReasonMalformed
	}
}
