package ajax

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/pathway/internal/platform/errors"
	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/sessioncookie"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
)

// Action names accepted by the endpoint.
const (
	ActionSetPredesign         = "front_set_predesign"
	ActionAfterPluginActivated = "kubio_after_plugin_activated"
)

// maxFormBytes bounds the urlencoded request body.
const maxFormBytes = 64 << 10

// nonceFailure is the reply body of a failed token check.
var nonceFailure = onboarding.Response{Success: false, Data: -1}

type action func(w http.ResponseWriter, r *http.Request)

type handlers struct {
	deps    module.Dependencies
	actions map[string]action
}

func newHandlers(deps module.Dependencies) handlers {
	h := handlers{deps: deps}
	h.actions = map[string]action{
		ActionSetPredesign:         h.setPredesign,
		ActionAfterPluginActivated: h.afterPluginActivated,
	}
	return h
}

func (h handlers) handleAjax(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "0", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.Form.Get("action"))
	handle, ok := h.actions[name]
	if !ok {
		httpx.LoggerFor(r).Debug().Str("action", name).Msg("unknown ajax action")
		http.Error(w, "0", http.StatusBadRequest)
		return
	}
	handle(w, r)
}

func (h handlers) setPredesign(w http.ResponseWriter, r *http.Request) {
	session, ok := sessioncookie.HandleFromRequest(r)
	if !ok {
		_ = httpx.WriteJSON(w, http.StatusForbidden, nonceFailure)
		return
	}
	in := onboarding.PredesignInput{
		Nonce:  r.Form.Get("nonce"),
		AI:     formValue(r, "AI", "no"),
		Source: formValue(r, "source", onboarding.DefaultSource),
	}
	if _, err := h.deps.Onboarding.SetPredesign(r.Context(), session, in); err != nil {
		if errors.Is(err, onboarding.ErrNonceInvalid) {
			httpx.LoggerFor(r).Warn().Err(err).Msg("predesign nonce rejected")
			_ = httpx.WriteJSON(w, http.StatusForbidden, nonceFailure)
			return
		}
		h.fail(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, onboarding.Response{Success: true})
}

func (h handlers) afterPluginActivated(w http.ResponseWriter, r *http.Request) {
	session, ok := sessioncookie.HandleFromRequest(r)
	if !ok {
		h.fail(w, r, apperrors.E(apperrors.KindUnauthorized, "session is required"))
		return
	}
	resp, err := h.deps.Onboarding.AfterPluginActivated(r.Context(), session, strings.TrimSpace(r.Form.Get("slug")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	httpx.LoggerFor(r).Error().Err(err).Int("status", status).Msg("ajax action failed")
	_ = httpx.WriteJSON(w, status, onboarding.Response{Success: false})
}

// formValue returns the request field, or def when the field is absent. Body
// values win over the query string.
func formValue(r *http.Request, key, def string) string {
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return def
	}
	return values[0]
}
