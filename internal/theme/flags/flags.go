// Package flags holds the onboarding flags of one browser session: the
// choices made on the builder notice that the plugin activation redirect
// reads back.
package flags

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/louisbranch/pathway/internal/platform/timeouts"
)

// ErrSessionRequired reports a handle without a session id.
var ErrSessionRequired = errors.New("session id is required")

// Session is the typed flag record of one session.
type Session struct {
	StartWithAI    bool
	ImportDesign   bool
	StartSource    string
	ActivationHash string
	UpdatedAt      time.Time
}

// StartSourceOr returns StartSource, or def when it is empty.
func (s Session) StartSourceOr(def string) string {
	if s.StartSource == "" {
		return def
	}
	return s.StartSource
}

// Store persists sessions. A Save is visible to the next Load of the same
// session id.
type Store interface {
	Load(ctx context.Context, sessionID string) (Session, bool, error)
	Save(ctx context.Context, sessionID string, session Session) error
	Close() error
}

// Handle binds a store to the session of one request.
type Handle struct {
	SessionID string
	Store     Store
	// Now stamps UpdatedAt; time.Now when nil.
	Now func() time.Time
}

// Load returns the session flags, or the zero Session for a new session.
func (h Handle) Load(ctx context.Context) (Session, error) {
	if err := h.check(); err != nil {
		return Session{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StoreOperation)
	defer cancel()
	session, _, err := h.Store.Load(ctx, h.SessionID)
	return session, err
}

// Update loads the session, applies fn and saves the result.
func (h Handle) Update(ctx context.Context, fn func(*Session)) (Session, error) {
	session, err := h.Load(ctx)
	if err != nil {
		return Session{}, err
	}
	fn(&session)
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	session.UpdatedAt = now().UTC()
	ctx, cancel := context.WithTimeout(ctx, timeouts.StoreOperation)
	defer cancel()
	if err := h.Store.Save(ctx, h.SessionID, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (h Handle) check() error {
	if h.Store == nil {
		return errors.New("flag store is not configured")
	}
	if strings.TrimSpace(h.SessionID) == "" {
		return ErrSessionRequired
	}
	return nil
}

type handleKey struct{}

// WithHandle attaches h to ctx.
func WithHandle(ctx context.Context, h Handle) context.Context {
	return context.WithValue(ctx, handleKey{}, h)
}

// HandleFromContext returns the handle attached by WithHandle.
func HandleFromContext(ctx context.Context) (Handle, bool) {
	if ctx == nil {
		return Handle{}, false
	}
	h, ok := ctx.Value(handleKey{}).(Handle)
	return h, ok
}
