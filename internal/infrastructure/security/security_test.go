package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, expires, err := GenerateAdminToken("admin@example.com", "s3cret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expires) < 59*time.Minute {
		t.Errorf("expiry too early: %v", expires)
	}

	claims, err := ValidateJWT(token, "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	admin, err := AdminFromClaims(claims)
	if err != nil {
		t.Fatal(err)
	}
	if admin.Email != "admin@example.com" || len(admin.SessionID) != 26 {
		t.Errorf("admin = %+v", admin)
	}
	if !admin.ExpiresAt.Equal(expires.Truncate(time.Second)) {
		t.Errorf("claims expiry %v, want %v", admin.ExpiresAt, expires)
	}
}

func TestValidateJWTRejects(t *testing.T) {
	good, _, _ := GenerateAdminToken("admin@example.com", "s3cret", time.Hour)
	expired, _, _ := GenerateAdminToken("admin@example.com", "s3cret", -time.Minute)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x", "role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"expired":  expired,
		"alg none": none,
		"garbage":  "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ValidateJWT(token, "s3cret"); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
	if _, err := ValidateJWT(good, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret accepted: %v", err)
	}
}

func TestAdminFromClaimsRequiresRole(t *testing.T) {
	if _, err := AdminFromClaims(jwt.MapClaims{"sub": "a@example.com", "role": "editor"}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("non-admin role accepted: %v", err)
	}
	if _, err := AdminFromClaims(jwt.MapClaims{"role": "admin"}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("missing subject accepted: %v", err)
	}
}

func TestGenerateAdminTokenNeedsSecret(t *testing.T) {
	if _, _, err := GenerateAdminToken("admin@example.com", "", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("rahasia")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("unexpected hash format %q", hash)
	}
	if !CheckPassword(hash, "rahasia") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "Rahasia") || CheckPassword("", "rahasia") {
		t.Error("wrong password accepted")
	}
}

func TestGenerators(t *testing.T) {
	key, err := GenerateSecureKey(64)
	if err != nil {
		t.Fatal(err)
	}
	if len(key) != 64 {
		t.Errorf("key length = %d", len(key))
	}
	a, b := GenerateULID(), GenerateULID()
	if len(a) != 26 || a == b {
		t.Errorf("ulids %q %q", a, b)
	}
	if id := GenerateUUID(); !IsUUID(id) {
		t.Errorf("%q is not a uuid", id)
	}
	if IsUUID("page-1") {
		t.Error("IsUUID accepted a slug")
	}
}
