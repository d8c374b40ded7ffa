package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"stylist/internal/http/handlers"
	"stylist/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
	)

	limitGeneration := middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)

	r.Get("/v1/healthz", app.Health)

	r.Get("/", app.Index)
	r.Post("/source", app.UploadSource)
	r.With(limitGeneration).Post("/generate", app.Generate)
	r.Get("/previews/{token}", app.Preview)
	r.Get("/outfits.zip", app.Archive)
	r.Route("/outfits/{style}", func(r chi.Router) {
		r.Get("/download", app.Download)
		r.Post("/promote", app.Promote)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(app.Config.CORSAllowedOrigins))
		r.Get("/state", app.State)
		r.Post("/source", app.APISetSource)
		r.With(limitGeneration).Post("/generate", app.APIGenerate)
		r.Post("/outfits/{style}/promote", app.APIPromote)
	})

	return r
}
