package public

import (
	"encoding/json"
	"errors"
	"github.com/langowen/fxdash/internal/dashboard/i18n"
	"github.com/langowen/fxdash/internal/entities"
	"log/slog"
	"net/http"
	"slices"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type amountRequest struct {
	Amount *float64 `json:"amount"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type rangeRequest struct {
	Range string `json:"range"`
}

type preferencesRequest struct {
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}

type translationsResponse struct {
	Language entities.Language `json:"language"`
	Messages map[string]string `json:"messages"`
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, healthResponse{
		Status:  "UP",
		Message: "Currency dashboard is running",
	})
}

func (s *Server) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := s.prefs.Get().Language
	if tag := r.URL.Query().Get("lang"); tag != "" {
		lang = i18n.Match(tag)
	}

	RespondWithJSON(w, http.StatusOK, translationsResponse{
		Language: lang,
		Messages: i18n.Bundle(lang),
	})
}

func (s *Server) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	state := sessionFrom(r.Context()).Orchestrator.Snapshot()

	RespondWithJSON(w, http.StatusOK, newCurrencyViews(state.Catalog))
}

func (s *Server) respondState(w http.ResponseWriter, r *http.Request) {
	state := sessionFrom(r.Context()).Orchestrator.Snapshot()

	RespondWithJSON(w, http.StatusOK, newStateView(state, s.prefs.Get()))
}

func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r)
}

func (s *Server) SetAmount(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil || req.Amount == nil {
		RespondWithError(w, http.StatusBadRequest, "amount is required")
		return
	}

	sessionFrom(r.Context()).Orchestrator.SetAmount(*req.Amount)

	s.respondState(w, r)
}

func (s *Server) SetFrom(w http.ResponseWriter, r *http.Request) {
	code, ok := s.currencyCode(w, r)
	if !ok {
		return
	}

	sessionFrom(r.Context()).Orchestrator.SetFrom(code)

	s.respondState(w, r)
}

func (s *Server) SetTo(w http.ResponseWriter, r *http.Request) {
	code, ok := s.currencyCode(w, r)
	if !ok {
		return
	}

	sessionFrom(r.Context()).Orchestrator.SetTo(code)

	s.respondState(w, r)
}

// currencyCode reads the code from the body. Once the catalog is loaded only
// its codes are accepted.
func (s *Server) currencyCode(w http.ResponseWriter, r *http.Request) (entities.CurrencyCode, bool) {
	var req codeRequest
	if err := decode(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return "", false
	}

	code := entities.NewCurrencyCode(req.Code)
	if code == "" {
		RespondWithError(w, http.StatusBadRequest, "code is required")
		return "", false
	}

	catalog := sessionFrom(r.Context()).Orchestrator.Snapshot().Catalog
	if len(catalog) > 0 && !catalog.Has(code) {
		RespondWithError(w, http.StatusBadRequest, "unknown currency", code.String())
		return "", false
	}

	return code, true
}

func (s *Server) SetRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if err := decode(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rng, err := entities.ParseRange(req.Range)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "unknown range", req.Range)
		return
	}

	sessionFrom(r.Context()).Orchestrator.SetRange(r.Context(), rng)

	s.respondState(w, r)
}

// Convert reports conversion failures inside the state view.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionFrom(r.Context()).Orchestrator.Convert(r.Context()); err != nil {
		slog.Debug("convert request finished with error", "error", err)
	}

	s.respondState(w, r)
}

func (s *Server) Swap(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionFrom(r.Context()).Orchestrator.Swap(r.Context()); err != nil {
		slog.Debug("swap request finished with error", "error", err)
	}

	s.respondState(w, r)
}

func (s *Server) GetChart(w http.ResponseWriter, r *http.Request) {
	o := sessionFrom(r.Context()).Orchestrator
	state := o.Snapshot()
	points := slices.Collect(o.Window())

	RespondWithJSON(w, http.StatusOK, newChartView(state, points, s.prefs.Get().Language))
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	state := sessionFrom(r.Context()).Orchestrator.Snapshot()

	RespondWithJSON(w, http.StatusOK, newHistoryView(state.Log, s.prefs.Get().Language))
}

func (s *Server) EndSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	if err := s.sessions.End(sess.ID); err != nil && !errors.Is(err, entities.ErrSessionNotFound) {
		RespondWithError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.prefs.Get())
}

func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decode(r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var (
		theme entities.Theme
		lang  entities.Language
		err   error
	)

	if req.Theme != nil {
		if theme, err = entities.ParseTheme(*req.Theme); err != nil {
			RespondWithError(w, http.StatusBadRequest, "unknown theme", *req.Theme)
			return
		}
	}

	if req.Language != nil {
		if lang, err = entities.ParseLanguage(*req.Language); err != nil {
			RespondWithError(w, http.StatusBadRequest, "unknown language", *req.Language)
			return
		}
	}

	if theme != "" {
		if err := s.prefs.SetTheme(r.Context(), theme); err != nil {
			slog.Error("failed to save theme", "error", err)
			RespondWithError(w, http.StatusInternalServerError, "failed to save preferences")
			return
		}
	}

	if lang != "" {
		if err := s.prefs.SetLanguage(r.Context(), lang); err != nil {
			slog.Error("failed to save language", "error", err)
			RespondWithError(w, http.StatusInternalServerError, "failed to save preferences")
			return
		}
	}

	RespondWithJSON(w, http.StatusOK, s.prefs.Get())
}

func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := s.prefs.ToggleTheme(r.Context()); err != nil {
		slog.Error("failed to toggle theme", "error", err)
		RespondWithError(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}

	RespondWithJSON(w, http.StatusOK, s.prefs.Get())
}
