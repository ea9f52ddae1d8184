// Package sessioncookie issues the cookie that identifies an onboarding
// session.
package sessioncookie

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/louisbranch/pathway/internal/services/pathway/platform/requestmeta"
	"github.com/louisbranch/pathway/internal/theme/flags"
)

// Name is the session cookie name.
const Name = "pathway_session"

// Read returns the session id when the cookie holds a valid one.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Ensure returns the request session id, issuing a new cookie when the
// request has none.
func Ensure(w http.ResponseWriter, r *http.Request) string {
	if sessionID, ok := Read(r); ok {
		return sessionID
	}
	sessionID := uuid.NewString()
	Write(w, r, sessionID)
	return sessionID
}

// Bind attaches a flags handle for the request session to every request.
func Bind(store flags.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := Ensure(w, r)
			ctx := flags.WithHandle(r.Context(), flags.Handle{SessionID: sessionID, Store: store})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HandleFromRequest returns the flags handle bound by Bind.
func HandleFromRequest(r *http.Request) (flags.Handle, bool) {
	if r == nil {
		return flags.HandleFromContext(context.Background())
	}
	return flags.HandleFromContext(r.Context())
}
