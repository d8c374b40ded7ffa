package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"stylist/internal/imagestore"
	"stylist/internal/stylist"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const acceptAttr = imagestore.Accept

// Index renders the stylist page for the current session state.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, http.StatusOK, a.Session.Snapshot(), "")
}

// renderPage shows st; a non-empty flash replaces the stored error for this
// response only.
func (a *App) renderPage(w http.ResponseWriter, status int, st stylist.State, flash string) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, a.pageView(st, flash)); err != nil {
		a.Logger.Error().Err(err).Msg("handlers: render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
