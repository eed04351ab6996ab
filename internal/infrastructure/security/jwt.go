package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Admin is the identity carried by an admin token.
type Admin struct {
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// GenerateAdminToken creates an HS256 token for email valid for ttl.
func GenerateAdminToken(email, jwtSecret string, ttl time.Duration) (string, time.Time, error) {
	if jwtSecret == "" {
		return "", time.Time{}, errors.New("jwt secret is not configured")
	}
	now := time.Now().UTC()
	expires := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"sid":  GenerateULID(),
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign jwt: %w", err)
	}
	return signed, expires, nil
}

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// AdminFromClaims extracts the admin identity, rejecting tokens without the
// admin role.
func AdminFromClaims(claims jwt.MapClaims) (*Admin, error) {
	role, _ := claims["role"].(string)
	email, _ := claims["sub"].(string)
	if role != "admin" || email == "" {
		return nil, ErrInvalidToken
	}
	admin := &Admin{Email: email}
	admin.SessionID, _ = claims["sid"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		admin.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return admin, nil
}
