package admin

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/pathway/internal/platform/errors"
	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/pagerender"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/sessioncookie"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
	"github.com/louisbranch/pathway/internal/theme/view"
)

type handlers struct {
	deps module.Dependencies
}

type componentsResponse struct {
	Components []string `json:"components"`
}

type nonceResponse struct {
	Action string `json:"action"`
	Nonce  string `json:"nonce"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h handlers) handleGetStarted(w http.ResponseWriter, r *http.Request) {
	session, ok := sessioncookie.HandleFromRequest(r)
	if !ok {
		h.fail(w, r, apperrors.E(apperrors.KindUnauthorized, "session is required"))
		return
	}
	token, err := h.deps.Nonces.Issue(onboarding.PredesignNonceAction, session.SessionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tag, _ := i18n.ResolveTag(r)
	page := pagerender.Page{
		Kind:  view.KindPage,
		Title: i18n.Printer(tag).Sprintf(i18n.KeyGetStartedTitle, h.deps.Theme.Manifest.Name),
		Main:  getStarted(token),
	}
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		httpx.LoggerFor(r).Error().Err(err).Msg("render get-started page")
		httpx.WriteError(w, err)
	}
}

func (h handlers) handleActivated(w http.ResponseWriter, r *http.Request) {
	session, ok := sessioncookie.HandleFromRequest(r)
	if !ok {
		h.fail(w, r, apperrors.E(apperrors.KindUnauthorized, "session is required"))
		return
	}
	slug := strings.TrimSpace(r.FormValue("slug"))
	if slug == "" {
		h.fail(w, r, apperrors.E(apperrors.KindInvalidInput, "slug is required"))
		return
	}
	resp, err := h.deps.Onboarding.AfterPluginActivated(r.Context(), session, slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handlePlugins(w http.ResponseWriter, r *http.Request) {
	tag, _ := i18n.ResolveTag(r)
	_ = httpx.WriteJSON(w, http.StatusOK, onboarding.RecommendedPlugins(h.deps.Onboarding.Installed, i18n.Printer(tag)))
}

func (h handlers) handleComponents(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, componentsResponse{Components: h.deps.Theme.Registry.Keys()})
}

func (h handlers) handleNonce(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimSpace(r.URL.Query().Get("action"))
	if action == "" {
		h.fail(w, r, apperrors.E(apperrors.KindInvalidInput, "action is required"))
		return
	}
	session, ok := sessioncookie.HandleFromRequest(r)
	if !ok {
		h.fail(w, r, apperrors.E(apperrors.KindUnauthorized, "session is required"))
		return
	}
	token, err := h.deps.Nonces.Issue(action, session.SessionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteJSON(w, http.StatusOK, nonceResponse{Action: action, Nonce: token})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, apperrors.E(apperrors.KindNotFound, "admin route not found"))
}

func (h handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		httpx.LoggerFor(r).Error().Err(err).Str("path", r.URL.Path).Msg("admin request failed")
		message = http.StatusText(status)
	}
	_ = httpx.WriteJSON(w, status, errorResponse{Error: message})
}
