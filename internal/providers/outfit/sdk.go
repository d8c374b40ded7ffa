package outfit

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vincent-petithory/dataurl"
	genaisdk "google.golang.org/genai"

	"stylist/internal/domain"
)

// ContentModels is satisfied by (*genai.Client).Models.
type ContentModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genaisdk.Content, config *genaisdk.GenerateContentConfig) (*genaisdk.GenerateContentResponse, error)
}

// SDKGenerator produces outfit images with the official Gen AI SDK.
type SDKGenerator struct {
	models ContentModels
	model  string
	logger zerolog.Logger
}

// SDKOptions configures NewSDKGenerator.
type SDKOptions struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

func NewSDKGenerator(ctx context.Context, opts SDKOptions) (*SDKGenerator, error) {
	if opts.APIKey == "" {
		return nil, errors.New("outfit: sdk transport requires an API key")
	}
	client, err := genaisdk.NewClient(ctx, &genaisdk.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genaisdk.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("outfit: create genai client: %w", err)
	}
	return newSDKGenerator(client.Models, opts.Model, opts.Logger), nil
}

func newSDKGenerator(models ContentModels, model string, logger zerolog.Logger) *SDKGenerator {
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	return &SDKGenerator{models: models, model: model, logger: logger}
}

func (g *SDKGenerator) Generate(ctx context.Context, src domain.SourceImage, style domain.StyleLabel) (string, error) {
	contents := []*genaisdk.Content{
		genaisdk.NewContentFromParts([]*genaisdk.Part{
			genaisdk.NewPartFromBytes(src.Data, src.MIMEType),
			genaisdk.NewPartFromText(BuildPrompt(style)),
		}, genaisdk.RoleUser),
	}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genaisdk.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("empty response from model")
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			g.logger.Debug().
				Str("style", style.String()).
				Str("model", g.model).
				Int("bytes", len(part.InlineData.Data)).
				Msg("outfit: sdk generated image")
			return dataurl.New(part.InlineData.Data, mime).String(), nil
		}
	}
	return "", errors.New("no image content returned")
}
