// Package onboarding implements the builder onboarding flow of the theme:
// the predesign choice made on the front notice, the redirect produced when
// the builder plugin is activated, and the notice shown once a design has
// been imported.
package onboarding

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/louisbranch/pathway/internal/platform/errors"
	"github.com/louisbranch/pathway/internal/theme/flags"
	"github.com/louisbranch/pathway/internal/theme/i18n"
)

// PredesignNonceAction is the action front_set_predesign tokens are bound to.
const PredesignNonceAction = "kubio_front_set_predesign_nonce"

// Builder plugin slugs.
const (
	BuilderSlug    = "kubio"
	BuilderProSlug = "kubio-pro"
)

// Start source values.
const (
	DefaultSource        = "notice"
	DefaultStartSource   = "other"
	customizerMarker     = "customizer"
	customizerSidebar    = "customizer-sidebar"
	ImportedQueryParam   = "kubio-designed-imported"
	ActivationQueryParam = "kubio-activation-hash"
)

// Verifier checks an authenticity token for an action and session.
type Verifier interface {
	Verify(token, action, sessionID string) error
}

// Response is the ajax reply envelope.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// RedirectData is the payload of an activation reply.
type RedirectData struct {
	Redirect string `json:"redirect"`
}

// PredesignInput is the front_set_predesign request.
type PredesignInput struct {
	Nonce string
	// AI is "yes" to start with AI; anything else imports the design.
	AI     string
	Source string
}

// Service runs the onboarding operations.
type Service struct {
	Nonces Verifier
	// AdminURL is the admin root, e.g. http://localhost:8090/wp-admin.
	AdminURL string
	// Installed lists installed plugin paths such as kubio-pro/plugin.php.
	Installed []string
	// NewHash generates activation hashes; NewActivationHash when nil.
	NewHash func() string
}

// ErrNonceInvalid is returned when front_set_predesign fails the token check.
var ErrNonceInvalid = apperrors.EK(apperrors.KindForbidden, i18n.KeyAjaxNonceInvalid, "nonce verification failed")

// SetPredesign records the predesign choice on the session. The token is
// checked before any flag changes.
func (s Service) SetPredesign(ctx context.Context, h flags.Handle, in PredesignInput) (flags.Session, error) {
	if s.Nonces == nil {
		return flags.Session{}, ErrNonceInvalid
	}
	if err := s.Nonces.Verify(in.Nonce, PredesignNonceAction, h.SessionID); err != nil {
		return flags.Session{}, fmt.Errorf("%w: %v", ErrNonceInvalid, err)
	}

	withAI := in.AI == "yes"
	source := SanitizeTextField(in.Source)
	return h.Update(ctx, func(session *flags.Session) {
		ApplyPredesign(session, withAI, source)
	})
}

// ApplyPredesign sets the predesign flags for the given choice.
func ApplyPredesign(session *flags.Session, withAI bool, source string) {
	if withAI {
		session.StartWithAI = true
	} else {
		session.ImportDesign = true
	}
	session.StartSource = StartSource(source, withAI)
}

// StartSource derives the recorded start source. Customizer sources are kept
// as they are; others are suffixed with -ai or -homepage.
func StartSource(source string, withAI bool) string {
	if strings.Contains(source, customizerMarker) {
		return source
	}
	if withAI {
		return source + "-ai"
	}
	return source + "-homepage"
}

// AfterPluginActivated produces the builder redirect when slug is the builder
// plugin. Other plugins get a plain success reply and leave flags untouched.
func (s Service) AfterPluginActivated(ctx context.Context, h flags.Handle, slug string) (Response, error) {
	if slug != BuilderPluginSlug(s.Installed) {
		return Response{Success: true}, nil
	}

	newHash := s.NewHash
	if newHash == nil {
		newHash = NewActivationHash
	}
	hash := newHash()
	session, err := h.Update(ctx, func(session *flags.Session) {
		session.ActivationHash = hash
	})
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.KindUnavailable, "store activation hash", err)
	}
	return Response{Success: true, Data: RedirectData{Redirect: ActivationRedirect(s.AdminURL, hash, session)}}, nil
}

// ActivationRedirect builds the admin URL the builder opens after activation.
func ActivationRedirect(adminURL, hash string, session flags.Session) string {
	params := []queryParam{{"page", "kubio-get-started"}, {ActivationQueryParam, hash}}
	if strings.HasPrefix(session.StartSourceOr(DefaultStartSource), customizerSidebar) {
		params[0].value = "kubio"
	} else {
		imported := "0"
		if session.ImportDesign {
			imported = "1"
		}
		params = append(params, queryParam{ImportedQueryParam, imported})
	}
	return addQueryArgs(strings.TrimRight(adminURL, "/")+"/admin.php", params)
}

// NewActivationHash returns a fresh activate- prefixed hash.
func NewActivationHash() string {
	return "activate-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsImported reports whether the query marks a freshly imported design.
func IsImported(query url.Values) bool {
	if !query.Has(ImportedQueryParam) {
		return false
	}
	return Intval(query.Get(ImportedQueryParam)) != 0
}

type queryParam struct {
	key   string
	value string
}

// addQueryArgs appends params in order, keeping any query already on base.
func addQueryArgs(base string, params []queryParam) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(pairs, "&")
}
