// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	model "ems_backend/internals/features/users/auth/model"
)

// AccessTokenTTL: umur access token portal.
const AccessTokenTTL = 12 * time.Hour

// IssueAccessToken membuat JWT HS256 dengan klaim yang dibaca middleware.
func IssueAccessToken(secret string, user model.UserModel, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("jwt secret is empty")
	}

	expiresAt := now.Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":       user.UserID,
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// TokenExpiry membaca klaim exp tanpa memvalidasi signature
// (dipakai logout untuk menaruh token di blacklist sampai kedaluwarsa).
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Now().Add(AccessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(AccessTokenTTL)
}
