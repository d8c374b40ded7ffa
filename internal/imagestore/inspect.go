package imagestore

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

// AcceptedTypes lists the MIME types offered by the upload form.
var AcceptedTypes = []string{"image/png", "image/jpeg", "image/webp"}

// Accept is the value of the upload input's accept attribute.
const Accept = "image/png, image/jpeg, image/webp"

// Accepted reports whether mime is one of AcceptedTypes.
func Accepted(mime string) bool {
	mime = normalizeMIME(mime)
	for _, t := range AcceptedTypes {
		if mime == t {
			return true
		}
	}
	return false
}

// Detect returns the declared MIME type when it names an image, otherwise the
// type sniffed from the content.
func Detect(data []byte, declared string) string {
	declared = normalizeMIME(declared)
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return normalizeMIME(mimetype.Detect(data).String())
}

// Dimensions decodes only the image header; unknown formats yield zeros.
func Dimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func normalizeMIME(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if v == "image/jpg" {
		return "image/jpeg"
	}
	return v
}
