package outfit

import (
	"context"

	"github.com/vincent-petithory/dataurl"

	"stylist/internal/domain"
	"stylist/internal/middleware"
	"stylist/internal/providers/genai"
)

// ImageClient is the part of genai.Client the generator depends on.
type ImageClient interface {
	GenerateImage(ctx context.Context, req genai.ImageRequest) (*genai.ImageAsset, error)
}

// GeminiGenerator produces outfit images through the Gemini REST client and
// returns them as data URLs.
type GeminiGenerator struct {
	client ImageClient
}

func NewGeminiGenerator(client ImageClient) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, src domain.SourceImage, style domain.StyleLabel) (string, error) {
	asset, err := g.client.GenerateImage(ctx, genai.ImageRequest{
		Prompt:     BuildPrompt(style),
		Source:     src.Data,
		SourceMIME: src.MIMEType,
		RequestID:  middleware.RequestIDFromContext(ctx),
	})
	if err != nil {
		return "", err
	}
	return dataurl.New(asset.Data, asset.Format).String(), nil
}
