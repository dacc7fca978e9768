// Package auth signs and verifies the session cookie tokens used by the web
// layer to persist a Session between requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

// Claims carries the session identity inside the signed cookie.
type Claims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	LoginToken string `json:"login_token"`
}

// GenerateToken signs an HS256 token binding username and loginToken for
// validityDuration.
func GenerateToken(username, loginToken string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username:   username,
		LoginToken: loginToken,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns the bound username and login
// token. Expired, forged, or malformed tokens yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (string, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Username, claims.LoginToken, nil
}
