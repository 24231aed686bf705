package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GunarsK-portfolio/user-service/internal/models"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	tokens, err := NewTokenService(testSecret, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	return tokens
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewTokenService(t *testing.T) {
	tokens := newTestTokenService(t)
	if got := tokens.TTL(); got != DefaultTokenTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTokenTTL)
	}
}

func TestNewTokenService_SecretValidation(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "valid secret", secret: testSecret, wantErr: false},
		{name: "empty secret", secret: "", wantErr: true},
		{name: "short secret", secret: "short", wantErr: true},
		{name: "31 byte secret", secret: strings.Repeat("x", 31), wantErr: true},
		{name: "32 byte secret", secret: strings.Repeat("x", 32), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.secret, DefaultTokenTTL)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTokenService() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// =============================================================================
// Issue / Decode Tests
// =============================================================================

func TestIssueAndDecode(t *testing.T) {
	tokens := newTestTokenService(t)

	tokenString, err := tokens.Issue(42, "user@example.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if len(strings.Split(tokenString, ".")) != 3 {
		t.Fatalf("Issue() = %q, want three-part JWT", tokenString)
	}

	claims, ok := tokens.Decode(tokenString)
	if !ok {
		t.Fatal("Decode() ok = false for a freshly issued token")
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}

	// Expiry is an absolute timestamp near now + default TTL.
	wantExp := time.Now().Add(DefaultTokenTTL)
	gotExp := claims.ExpiresAt.Time
	if gotExp.Before(wantExp.Add(-5*time.Second)) || gotExp.After(wantExp.Add(5*time.Second)) {
		t.Errorf("ExpiresAt = %v, want within 5s of %v", gotExp, wantExp)
	}
}

func TestDecode_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(t)

	tokenString, err := tokens.IssueWithTTL(1, "user@example.com", models.RoleUser, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueWithTTL() error = %v", err)
	}

	if _, ok := tokens.Decode(tokenString); ok {
		t.Error("Decode() ok = true for an already expired token")
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	tokens := newTestTokenService(t)

	valid, err := tokens.Issue(1, "user@example.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherTokens, err := NewTokenService("a-completely-different-32-byte-key!!", DefaultTokenTTL)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	foreignSigned, err := otherTokens.Issue(1, "user@example.com", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "empty string", tokenString: ""},
		{name: "garbage", tokenString: "not.a.token"},
		{name: "random bytes", tokenString: "aGVsbG8gd29ybGQ"},
		{name: "wrong signing key", tokenString: foreignSigned},
		{name: "tampered payload", tokenString: tamperPayload(t, valid)},
		{name: "truncated signature", tokenString: valid[:len(valid)-5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tokens.Decode(tt.tokenString); ok {
				t.Errorf("Decode(%q) ok = true, want false", tt.tokenString)
			}
		})
	}
}

func TestDecode_RejectsNonHMACAlgorithm(t *testing.T) {
	tokens := newTestTokenService(t)

	// alg=none token with a plausible claim set must not verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		Email:  "user@example.com",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, ok := tokens.Decode(tokenString); ok {
		t.Error("Decode() ok = true for an unsigned token")
	}
}

// tamperPayload flips a byte inside the payload segment of a JWT.
func tamperPayload(t *testing.T, tokenString string) string {
	t.Helper()
	parts := strings.SplitN(tokenString, ".", 3)
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %q", tokenString)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	return parts[0] + "." + string(payload) + "." + parts[2]
}
