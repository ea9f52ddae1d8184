// Package module defines the contract between the theme service and its
// route modules.
package module

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/louisbranch/pathway/internal/theme/content"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
	"github.com/louisbranch/pathway/internal/theme/setup"
)

// Nonces issues and verifies authenticity tokens.
type Nonces interface {
	Issue(action, sessionID string) (string, error)
	Verify(token, action, sessionID string) error
}

// Dependencies carries the shared services modules mount with.
type Dependencies struct {
	Theme      *setup.Theme
	Content    content.Source
	Nonces     Nonces
	Onboarding onboarding.Service
	Logger     zerolog.Logger
}

// Mount is the HTTP surface a module contributes.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable route group.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
