package handlers

import (
	"html/template"

	"stylist/internal/domain"
	"stylist/internal/gallery"
	"stylist/internal/stylist"
)

type sourceView struct {
	Name       string `json:"name"`
	MIMEType   string `json:"mime_type"`
	PreviewURL string `json:"preview_url"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

type downloadView struct {
	Href     string `json:"href"`
	Filename string `json:"filename"`
}

type outfitView struct {
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	ImageURL string       `json:"image_url"`
	Download downloadView `json:"download"`
}

type generationView struct {
	Phase   domain.Phase `json:"phase"`
	Outfits []outfitView `json:"outfits"`
	Message string       `json:"message,omitempty"`
}

type stateView struct {
	Source     *sourceView    `json:"source"`
	Generation generationView `json:"generation"`
	Error      string         `json:"error,omitempty"`
}

func (a *App) stateView(st stylist.State) stateView {
	v := stateView{
		Generation: generationView{
			Phase:   st.Generation.Phase,
			Message: st.Generation.Message,
			Outfits: []outfitView{},
		},
		Error: st.Error,
	}
	if st.Source != nil {
		v.Source = &sourceView{
			Name:       st.Source.Name,
			MIMEType:   st.Source.MIMEType,
			PreviewURL: st.Source.PreviewURL,
			Width:      st.Source.Width,
			Height:     st.Source.Height,
		}
	}
	for _, o := range st.Generation.Outfits {
		link := a.Gallery.Download(o)
		v.Generation.Outfits = append(v.Generation.Outfits, outfitView{
			Title:    string(o.Style),
			Slug:     o.Style.Slug(),
			ImageURL: o.ImageURL,
			Download: downloadView{Href: link.Href, Filename: link.Filename},
		})
	}
	return v
}

type cardView struct {
	Title    string
	Slug     string
	ImageURL template.URL
	Download gallery.Link
	Href     template.URL
}

type pageView struct {
	Title   string
	Accept  string
	Source  *sourceView
	Loading bool
	Error   string
	Cards   []cardView
}

// Generated images are data: or http(s) URLs produced by our own providers,
// so they are marked safe for src/href attributes.
func (a *App) pageView(st stylist.State, flash string) pageView {
	sv := a.stateView(st)
	p := pageView{
		Title:   "Virtual Stylist AI",
		Accept:  acceptAttr,
		Source:  sv.Source,
		Loading: st.Generation.Phase == domain.PhaseInFlight,
		Error:   st.Error,
	}
	if flash != "" {
		p.Error = flash
	}
	for _, o := range st.Generation.Outfits {
		link := a.Gallery.Download(o)
		p.Cards = append(p.Cards, cardView{
			Title:    string(o.Style),
			Slug:     o.Style.Slug(),
			ImageURL: template.URL(o.ImageURL),
			Download: link,
			Href:     template.URL(link.Href),
		})
	}
	return p
}
