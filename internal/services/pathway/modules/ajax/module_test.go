package ajax

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/sessioncookie"
	"github.com/louisbranch/pathway/internal/theme/flags"
	"github.com/louisbranch/pathway/internal/theme/nonce"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
)

const sessionID = "7c0d5f7e-3a8d-4f53-9a43-0c6f3b1b2d11"

type fixture struct {
	handler http.Handler
	store   *flags.MemoryStore
	nonces  *nonce.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	nonces, err := nonce.New(nonce.Config{Key: []byte(strings.Repeat("k", nonce.MinKeyLength))})
	if err != nil {
		t.Fatalf("nonce.New() error = %v", err)
	}
	store := flags.NewMemoryStore()
	deps := module.Dependencies{
		Nonces: nonces,
		Onboarding: onboarding.Service{
			Nonces:   nonces,
			AdminURL: "http://example.com/wp-admin",
			NewHash:  func() string { return "activate-fixed" },
		},
	}
	mounted, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return fixture{handler: sessioncookie.Bind(store)(mounted.Handler), store: store, nonces: nonces}
}

func (f fixture) post(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin-ajax", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func (f fixture) token(t *testing.T) string {
	t.Helper()
	token, err := f.nonces.Issue(onboarding.PredesignNonceAction, sessionID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return token
}

func (f fixture) session(t *testing.T) (flags.Session, bool) {
	t.Helper()
	session, ok, err := f.store.Load(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return session, ok
}

func TestSetPredesign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       url.Values
		wantAI     bool
		wantImport bool
		wantSource string
	}{
		{name: "defaults", form: url.Values{}, wantImport: true, wantSource: "notice-homepage"},
		{name: "with ai", form: url.Values{"AI": {"yes"}, "source": {"notice"}}, wantAI: true, wantSource: "notice-ai"},
		{name: "customizer source kept", form: url.Values{"AI": {"yes"}, "source": {"customizer-sidebar"}}, wantAI: true, wantSource: "customizer-sidebar"},
		{name: "sanitized source", form: url.Values{"source": {"<b>front</b>\npage"}}, wantImport: true, wantSource: "front page-homepage"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.form.Set("action", ActionSetPredesign)
			tc.form.Set("nonce", f.token(t))
			rr := f.post(t, tc.form)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
			}
			if got := strings.TrimSpace(rr.Body.String()); got != `{"success":true}` {
				t.Fatalf("body = %s", got)
			}
			session, ok := f.session(t)
			if !ok {
				t.Fatal("session was not saved")
			}
			if session.StartWithAI != tc.wantAI || session.ImportDesign != tc.wantImport || session.StartSource != tc.wantSource {
				t.Fatalf("session = %+v", session)
			}
		})
	}
}

func TestSetPredesignReadsQueryString(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	query := url.Values{"action": {ActionSetPredesign}, "nonce": {f.token(t)}, "AI": {"yes"}, "source": {"hero"}}
	req := httptest.NewRequest(http.MethodPost, "/admin-ajax?"+query.Encode(), strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	session, ok := f.session(t)
	if !ok {
		t.Fatal("session was not saved")
	}
	if !session.StartWithAI || session.StartSource != "hero-ai" {
		t.Fatalf("session = %+v", session)
	}
}

func TestSetPredesignBodyWinsOverQuery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	form := url.Values{"action": {ActionSetPredesign}, "nonce": {f.token(t)}, "source": {"notice"}}
	req := httptest.NewRequest(http.MethodPost, "/admin-ajax?source=hero&AI=yes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessionID})
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	session, _ := f.session(t)
	if !session.StartWithAI || session.StartSource != "notice-ai" {
		t.Fatalf("session = %+v", session)
	}
}

func TestSetPredesignRejectsBadNonce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		nonce func(f fixture, t *testing.T) string
	}{
		{name: "missing", nonce: func(fixture, *testing.T) string { return "" }},
		{name: "garbage", nonce: func(fixture, *testing.T) string { return "not-a-token" }},
		{name: "other session", nonce: func(f fixture, t *testing.T) string {
			token, err := f.nonces.Issue(onboarding.PredesignNonceAction, "0b1f0f52-4c35-4c55-9e7e-2d9a8f4f7a10")
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			return token
		}},
		{name: "other action", nonce: func(f fixture, t *testing.T) string {
			token, err := f.nonces.Issue("another_action", sessionID)
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			return token
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			rr := f.post(t, url.Values{"action": {ActionSetPredesign}, "AI": {"yes"}, "nonce": {tc.nonce(f, t)}})
			if rr.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403", rr.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["success"] != false || body["data"] != float64(-1) {
				t.Fatalf("body = %v", body)
			}
			if _, ok := f.session(t); ok {
				t.Fatal("flags changed after a rejected nonce")
			}
		})
	}
}

func TestAfterPluginActivatedAction(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.post(t, url.Values{"action": {ActionAfterPluginActivated}, "slug": {"kubio"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Redirect string `json:"redirect"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := "http://example.com/wp-admin/admin.php?page=kubio-get-started&kubio-activation-hash=activate-fixed&kubio-designed-imported=0"
	if !body.Success || body.Data.Redirect != want {
		t.Fatalf("body = %+v, want redirect %s", body, want)
	}
}

func TestUnknownAction(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.post(t, url.Values{"action": {"nope"}})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "0" {
		t.Fatalf("body = %q, want 0", got)
	}
}

func TestGetIsNotAllowed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin-ajax?action="+ActionSetPredesign, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}
