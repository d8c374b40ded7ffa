package domain

// SourceImage is the user-selected input image together with its preview URL.
type SourceImage struct {
	Name       string
	Data       []byte
	MIMEType   string
	PreviewURL string
	Width      int
	Height     int
}

// Outfit is one generated result image for a style.
type Outfit struct {
	Style    StyleLabel `json:"title"`
	ImageURL string     `json:"image_url"`
}
