package handlers

import (
	"context"
	"errors"
	"net/http"

	"stylist/internal/domain"
)

// runGeneration detaches from the request so a disconnecting client does not
// cancel calls that are already out.
func (a *App) runGeneration(r *http.Request) error {
	ctx := context.WithoutCancel(r.Context())
	_, err := a.Session.Generate(ctx)
	return err
}

// Generate handles the generate button. Outcomes are stored in the session
// and shown after the redirect.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	if err := a.runGeneration(r); err != nil {
		a.Logger.Info().Err(err).Msg("handlers: generation finished with error")
	}
	redirectHome(w, r)
}

func (a *App) APIGenerate(w http.ResponseWriter, r *http.Request) {
	err := a.runGeneration(r)
	var ge *domain.GenerationError
	switch {
	case err == nil:
		a.json(w, http.StatusOK, a.stateView(a.Session.Snapshot()))
	case errors.Is(err, domain.ErrNoSource):
		a.error(w, http.StatusBadRequest, "no_source", domain.Message(err))
	case errors.Is(err, domain.ErrGenerationInFlight):
		a.error(w, http.StatusConflict, "in_flight", domain.Message(err))
	case errors.As(err, &ge):
		a.error(w, http.StatusBadGateway, "generation_failed", domain.Message(err))
	default:
		a.error(w, http.StatusInternalServerError, "internal", domain.Message(err))
	}
}

// State returns the session state as JSON.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.stateView(a.Session.Snapshot()))
}
