package nonce

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/pathway/internal/platform/errors"
)

const testAction = "kubio_front_set_predesign_nonce"

var testKey = []byte(strings.Repeat("k", MinKeyLength))

func newManager(t *testing.T, now func() time.Time) *Manager {
	t.Helper()
	m, err := New(Config{Key: testKey, TTL: time.Hour, Now: now})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Key: []byte("short")}); err == nil {
		t.Fatal("New() short key error = nil, want error")
	}
	if _, err := New(Config{Key: testKey, TTL: -time.Second}); err == nil {
		t.Fatal("New() negative ttl error = nil, want error")
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager(t, nil)
	token, err := m.Issue(testAction, "session-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if err := m.Verify(token, testAction, "session-1"); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(t, func() time.Time { return issuedAt })
	token, err := m.Issue(testAction, "session-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	other, err := New(Config{Key: []byte(strings.Repeat("x", MinKeyLength)), Now: func() time.Time { return issuedAt }})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	foreign, err := other.Issue(testAction, "session-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": Issuer, "sub": "session-1", "action": testAction}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name    string
		manager *Manager
		token   string
		action  string
		session string
	}{
		{name: "empty", manager: m, token: "", action: testAction, session: "session-1"},
		{name: "garbage", manager: m, token: "not-a-token", action: testAction, session: "session-1"},
		{name: "wrong action", manager: m, token: token, action: "other_action", session: "session-1"},
		{name: "wrong session", manager: m, token: token, action: testAction, session: "session-2"},
		{name: "foreign key", manager: m, token: foreign, action: testAction, session: "session-1"},
		{name: "alg none", manager: m, token: unsigned, action: testAction, session: "session-1"},
		{name: "expired", manager: newManager(t, func() time.Time { return issuedAt.Add(2 * time.Hour) }), token: token, action: testAction, session: "session-1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.manager.Verify(tc.token, tc.action, tc.session)
			if err == nil {
				t.Fatal("Verify() error = nil, want error")
			}
			if got := apperrors.KindOf(err); got != apperrors.KindForbidden {
				t.Fatalf("KindOf(Verify()) = %q, want %q", got, apperrors.KindForbidden)
			}
		})
	}
}

func TestIssueRequiresActionAndSession(t *testing.T) {
	t.Parallel()

	m := newManager(t, nil)
	if _, err := m.Issue("", "session-1"); err == nil {
		t.Fatal("Issue() without action error = nil, want error")
	}
	if _, err := m.Issue(testAction, " "); err == nil {
		t.Fatal("Issue() without session error = nil, want error")
	}
}
