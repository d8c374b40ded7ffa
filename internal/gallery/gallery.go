// Package gallery exposes the per-outfit actions: download and re-use as the
// new source image.
package gallery

import (
	"context"
	"fmt"
	"time"

	"stylist/internal/domain"
	"stylist/internal/imagestore"
	"stylist/pkg/zip"
)

// DefaultProductName prefixes download filenames.
const DefaultProductName = "virtual-stylist"

// Link is what the page renders as an <a href download> element.
type Link struct {
	Href     string
	Filename string
}

// Gallery renders download links and resolves outfits back into files.
type Gallery struct {
	productName string
	fetcher     *Fetcher
}

func New(productName string, fetcher *Fetcher) *Gallery {
	if productName == "" {
		productName = DefaultProductName
	}
	return &Gallery{productName: productName, fetcher: fetcher}
}

// DownloadName is "<product-name>-<style-slug>.png".
func DownloadName(productName string, style domain.StyleLabel) string {
	return fmt.Sprintf("%s-%s.png", domain.Slugify(productName), style.Slug())
}

// SourceFileName is the name given to an outfit re-used as the source.
func SourceFileName(style domain.StyleLabel) string {
	return fmt.Sprintf("used-as-source-%s.png", style.Slug())
}

// Download points straight at the outfit URL; nothing is fetched.
func (g *Gallery) Download(o domain.Outfit) Link {
	return Link{Href: o.ImageURL, Filename: DownloadName(g.productName, o.Style)}
}

// Promote resolves the outfit image into a file ready for ImageStore.SetSource.
// Failures are *domain.FetchError.
func (g *Gallery) Promote(ctx context.Context, o domain.Outfit) (imagestore.File, error) {
	data, mime, err := g.fetcher.Fetch(ctx, o.ImageURL)
	if err != nil {
		return imagestore.File{}, err
	}
	return imagestore.File{Name: SourceFileName(o.Style), Data: data, MIMEType: mime}, nil
}

// Archive bundles every outfit under its download filename.
func (g *Gallery) Archive(ctx context.Context, outfits []domain.Outfit) ([]byte, error) {
	assets := make([]zip.Asset, 0, len(outfits))
	for _, o := range outfits {
		data, _, err := g.fetcher.Fetch(ctx, o.ImageURL)
		if err != nil {
			return nil, err
		}
		assets = append(assets, zip.Asset{Filename: DownloadName(g.productName, o.Style), Data: data})
	}
	return zip.ArchiveAssets(assets, time.Now())
}
