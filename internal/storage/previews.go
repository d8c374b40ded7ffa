package storage

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// PreviewPrefix is the URL path under which live previews are served.
const PreviewPrefix = "/previews/"

type blob struct {
	data []byte
	mime string
}

// Previews holds short-lived, revocable in-memory previews of uploaded images.
// Each entry is addressed by a random token and lives until Revoke.
type Previews struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

func NewPreviews() *Previews {
	return &Previews{blobs: make(map[string]blob)}
}

// Create registers data and returns the URL that serves it.
func (p *Previews) Create(data []byte, mime string) (string, error) {
	return p.Replace("", data, mime)
}

// Replace registers data and revokes oldURL in one step, so readers never see
// both entries. An empty or unknown oldURL only creates.
func (p *Previews) Replace(oldURL string, data []byte, mime string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("storage: preview data is empty")
	}
	token := uuid.NewString()
	old, hasOld := tokenFromURL(oldURL)
	p.mu.Lock()
	if hasOld {
		delete(p.blobs, old)
	}
	p.blobs[token] = blob{data: data, mime: mime}
	p.mu.Unlock()
	return PreviewPrefix + token, nil
}

// Revoke releases the preview behind url. Unknown URLs are ignored.
func (p *Previews) Revoke(url string) {
	token, ok := tokenFromURL(url)
	if !ok {
		return
	}
	p.mu.Lock()
	delete(p.blobs, token)
	p.mu.Unlock()
}

// Open returns the bytes registered under token.
func (p *Previews) Open(token string) ([]byte, string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.blobs[token]
	if !ok {
		return nil, "", false
	}
	return b.data, b.mime, true
}

// Live reports how many previews are currently registered.
func (p *Previews) Live() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.blobs)
}

func tokenFromURL(url string) (string, bool) {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, PreviewPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(url, PreviewPrefix)
	if token == "" || strings.Contains(token, "/") {
		return "", false
	}
	return token, true
}
