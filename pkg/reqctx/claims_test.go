package reqctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID  uuid.UUID
	expired bool
}

func (s stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s stubClaims) GetSessionID() *uuid.UUID { return nil }
func (s stubClaims) GetTokenType() string     { return "access" }
func (s stubClaims) IsExpired() bool          { return s.expired }

func TestClaimsRoundTrip(t *testing.T) {
	uid := uuid.New()
	ctx := WithClaims(context.Background(), stubClaims{userID: uid})

	got := ClaimsFromContext(ctx)
	if got == nil {
		t.Fatal("expected claims in context")
	}
	if got.GetUserID() != uid {
		t.Errorf("user id = %s, want %s", got.GetUserID(), uid)
	}

	gotID, ok := UserIDFromContext(ctx)
	if !ok || gotID != uid {
		t.Errorf("UserIDFromContext = %s, %v", gotID, ok)
	}
}

func TestClaimsFromContextEmpty(t *testing.T) {
	if ClaimsFromContext(context.Background()) != nil {
		t.Error("expected nil claims on empty context")
	}
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Error("expected no user id on empty context")
	}
}

func TestIsAuthenticated(t *testing.T) {
	if IsAuthenticated(context.Background()) {
		t.Error("empty context should not be authenticated")
	}

	ctx := WithClaims(context.Background(), stubClaims{userID: uuid.New()})
	if !IsAuthenticated(ctx) {
		t.Error("valid claims should be authenticated")
	}

	expired := WithClaims(context.Background(), stubClaims{userID: uuid.New(), expired: true})
	if IsAuthenticated(expired) {
		t.Error("expired claims should not be authenticated")
	}
}
