package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stylist/internal/gallery"
	"stylist/internal/http/handlers"
	httpapi "stylist/internal/http/httpapi"
	"stylist/internal/imagestore"
	"stylist/internal/infra"
	"stylist/internal/providers/genai"
	"stylist/internal/providers/outfit"
	"stylist/internal/storage"
	"stylist/internal/stylist"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	client, err := newGenerationClient(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create generation client")
	}

	previews := storage.NewPreviews()
	orch := stylist.NewOrchestrator(client, stylist.OrchestratorOptions{
		CancelSiblings: cfg.GenerationCancelSiblings,
		Logger:         logger,
	})
	fetcher := gallery.NewFetcher(&http.Client{Timeout: cfg.FetchTimeout}, cfg.MaxUploadBytes)
	outfits := gallery.New(cfg.ProductName, fetcher)
	session := stylist.NewSession(imagestore.New(previews), orch, outfits, logger)

	app := &handlers.App{
		Config:   cfg,
		Logger:   logger,
		Session:  session,
		Gallery:  outfits,
		Previews: previews,
		InFlight: orch.InFlight,
	}
	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(app))

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("transport", cfg.GenAITransport).
			Bool("synthetic", cfg.GeminiAPIKey == "").
			Msg("stylist listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	if err := orch.Wait(shutdownCtx); err != nil {
		logger.Warn().Int("in_flight", orch.InFlight()).Msg("abandoning generation calls")
	}
	session.Close()
	logger.Info().Msg("server stopped")
}

func newGenerationClient(ctx context.Context, cfg *infra.Config, logger infra.Logger) (stylist.GenerationClient, error) {
	if cfg.GenAITransport == infra.TransportSDK {
		return outfit.NewSDKGenerator(ctx, outfit.SDKOptions{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			HTTPClient: &http.Client{Timeout: cfg.GenAIHTTPTimeout},
			Logger:     logger,
		})
	}
	return outfit.NewGeminiGenerator(genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GenAIHTTPTimeout,
		Logger:  &logger,
	})), nil
}
