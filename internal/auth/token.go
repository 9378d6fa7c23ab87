package auth

import (
	"fmt"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

// mintToken signs an HS256 token whose subject is the user id and whose
// token id (jti) is the server-side session id.
func mintToken(secret []byte, userID, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// parseToken verifies signature and expiry, returning subject and session id.
func parseToken(secret []byte, token string) (userID, sessionID string, err error) {
	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", entities.ErrUnauthorized, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return "", "", entities.ErrUnauthorized
	}
	return claims.Subject, claims.ID, nil
}
