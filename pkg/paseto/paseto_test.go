package pasetotoken

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

func localManager(t *testing.T) *Manager {
	t.Helper()
	k := paseto.NewV4SymmetricKey()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "appointease",
		Audience:  "dashboard",
		AccessTTL: 15 * time.Minute,
	}, Keys{Mode: ModeLocal, Symmetric: &k})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueVerifyRoundTrip_Local(t *testing.T) {
	m := localManager(t)
	uid := uuid.New()
	sid := uuid.New()

	tok, err := m.IssueAccess(uid, "provider", &sid)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("type = %s, want access", claims.Type)
	}
	if claims.UserID != uid {
		t.Errorf("user id = %s, want %s", claims.UserID, uid)
	}
	if claims.Role != "provider" {
		t.Errorf("role = %s", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("session id = %v, want %s", claims.SessionID, sid)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported expired")
	}
}

func TestIssueVerifyRoundTrip_Public(t *testing.T) {
	sk := paseto.NewV4AsymmetricSecretKey()
	pk := sk.Public()
	m, err := New(Config{
		Mode:     ModePublic,
		Issuer:   "appointease",
		Audience: "dashboard",
	}, Keys{Mode: ModePublic, Secret: &sk, Public: &pk})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	uid := uuid.New()
	tok, err := m.IssueRefresh(uid, "client", nil)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("type = %s, want refresh", claims.Type)
	}
	if claims.UserID != uid {
		t.Errorf("user id = %s, want %s", claims.UserID, uid)
	}
	if claims.SessionID != nil {
		t.Errorf("session id = %v, want nil", claims.SessionID)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := localManager(t)

	for _, tok := range []string{"", "not-a-token", "v4.local.AAAA"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("Verify(%q) accepted an invalid token", tok)
		}
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := localManager(t)
	verifier := localManager(t) // different symmetric key

	tok, err := issuer.IssueAccess(uuid.New(), "provider", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := verifier.Verify(tok); err == nil {
		t.Error("token encrypted under another key must not verify")
	}
}
