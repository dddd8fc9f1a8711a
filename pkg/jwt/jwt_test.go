package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateValidate_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)
	userID := uuid.New()

	token, err := m.Generate(userID, "dev@talentlens.io", "candidate")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "dev@talentlens.io" || claims.Role != "candidate" {
		t.Errorf("claims = %s/%s", claims.Email, claims.Role)
	}
	if claims.Issuer != "talentlens" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Minute)
	verifier := NewManager("secret-b", time.Minute)

	token, err := issuer.Generate(uuid.New(), "x@y.z", "candidate")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := verifier.Validate(token); err == nil {
		t.Error("expected validation failure for wrong secret")
	}
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	token, err := m.Generate(uuid.New(), "x@y.z", "candidate")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Validate(token); err == nil {
		t.Error("expected validation failure for expired token")
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	for _, token := range []string{"", "not-a-token", strings.Repeat("a.", 3)} {
		if _, err := m.Validate(token); err == nil {
			t.Errorf("Validate(%q) accepted garbage", token)
		}
	}
}
