package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vincent-petithory/dataurl"

	"stylist/internal/domain"
)

func (a *App) outfitFromRequest(r *http.Request) (domain.Outfit, bool) {
	style, ok := domain.ParseStyle(chi.URLParam(r, "style"))
	if !ok {
		return domain.Outfit{}, false
	}
	return a.Session.Snapshot().Generation.Outfit(style)
}

// Promote handles "Use as new source". Failures land in the session error.
func (a *App) Promote(w http.ResponseWriter, r *http.Request) {
	style, ok := domain.ParseStyle(chi.URLParam(r, "style"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, err := a.Session.Promote(r.Context(), style); err != nil {
		a.Logger.Info().Err(err).Str("style", style.String()).Msg("handlers: promote failed")
	}
	redirectHome(w, r)
}

func (a *App) APIPromote(w http.ResponseWriter, r *http.Request) {
	style, ok := domain.ParseStyle(chi.URLParam(r, "style"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown style")
		return
	}
	st, err := a.Session.Promote(r.Context(), style)
	var fe *domain.FetchError
	switch {
	case err == nil:
		a.json(w, http.StatusOK, a.stateView(st))
	case errors.Is(err, domain.ErrOutfitNotFound):
		a.error(w, http.StatusNotFound, "not_found", domain.Message(err))
	case errors.As(err, &fe):
		a.error(w, http.StatusBadGateway, "fetch_failed", st.Error)
	default:
		a.error(w, http.StatusInternalServerError, "internal", domain.Message(err))
	}
}

// Download serves a data-URL outfit as an attachment under its download
// filename and sends remote URLs straight to their origin.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	o, ok := a.outfitFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	link := a.Gallery.Download(o)
	if !strings.HasPrefix(link.Href, "data:") {
		http.Redirect(w, r, link.Href, http.StatusFound)
		return
	}
	du, err := dataurl.DecodeString(link.Href)
	if err != nil {
		http.Error(w, "invalid image", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", du.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", link.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(du.Data)
}

// Archive sends every outfit as one zip.
func (a *App) Archive(w http.ResponseWriter, r *http.Request) {
	outfits := a.Session.Outfits()
	if len(outfits) == 0 {
		http.NotFound(w, r)
		return
	}
	data, err := a.Gallery.Archive(r.Context(), outfits)
	if err != nil {
		http.Error(w, domain.Message(err), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.Slugify(a.Config.ProductName)+"-outfits.zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Preview serves a live preview; revoked previews are gone.
func (a *App) Preview(w http.ResponseWriter, r *http.Request) {
	data, mime, ok := a.Previews.Open(chi.URLParam(r, "token"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
