package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "token-test-secret-that-is-32ch!!"

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer([]byte(testSigningKey), "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return issuer
}

func TestNewTokenIssuer_RejectsNonHMACAlgorithms(t *testing.T) {
	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		if _, err := NewTokenIssuer([]byte(testSigningKey), alg, time.Minute); err == nil {
			t.Errorf("algorithm %q accepted, want error", alg)
		}
	}
}

func TestIssue_VerifyRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)

	signed, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatal("issued token is empty")
	}

	userID, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestVerify_WrongKey_ReturnsTokenInvalid(t *testing.T) {
	other, err := NewTokenIssuer([]byte("a-completely-different-32ch-key!"), "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	signed, err := other.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := newTestIssuer(t).Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_ExpiredToken_ReturnsTokenExpired(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  int64(42),
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(-30 * time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := newTestIssuer(t).Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_GarbageToken_ReturnsTokenInvalid(t *testing.T) {
	issuer := newTestIssuer(t)
	for _, raw := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("Verify(%q) err = %v, want ErrTokenInvalid", raw, err)
		}
	}
}

func TestVerify_MissingIDClaim_ReturnsTokenInvalid(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := newTestIssuer(t).Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
