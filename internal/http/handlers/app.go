package handlers

import (
	"encoding/json"
	"net/http"

	"stylist/internal/gallery"
	"stylist/internal/infra"
	"stylist/internal/storage"
	"stylist/internal/stylist"
)

// App bundles what the handlers need. There is one Session per process.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Session  *stylist.Session
	Gallery  *gallery.Gallery
	Previews *storage.Previews
	// InFlight reports running generation calls; optional.
	InFlight func() int
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	a.json(w, status, body)
}
