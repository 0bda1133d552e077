// Package auth issues and verifies the HS256 access tokens handed out on
// login.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "recipeshare"

// Claims is the registered claim set plus the numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the claims.
// An expired token yields common.ErrTokenExpired, anything else that fails
// verification yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
