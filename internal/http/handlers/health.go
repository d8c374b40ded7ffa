package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if a.InFlight != nil {
		body["in_flight"] = a.InFlight()
	}
	a.json(w, http.StatusOK, body)
}
