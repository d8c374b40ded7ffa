// Package imagestore owns the current source image and its preview URL.
package imagestore

import (
	"errors"
	"fmt"
	"sync"

	"stylist/internal/domain"
	"stylist/internal/storage"
)

// File is a user-provided image before it becomes the source.
type File struct {
	Name     string
	Data     []byte
	MIMEType string
}

// Store holds at most one SourceImage and exactly one live preview for it.
type Store struct {
	mu       sync.Mutex
	previews *storage.Previews
	current  *domain.SourceImage
}

func New(previews *storage.Previews) *Store {
	return &Store{previews: previews}
}

// SetSource replaces the source image. The registry swaps the previous
// preview for the new one atomically, so at most one is ever live.
func (s *Store) SetSource(file File) (domain.SourceImage, error) {
	if len(file.Data) == 0 {
		return domain.SourceImage{}, errors.New("imagestore: file is empty")
	}
	mime := Detect(file.Data, file.MIMEType)

	s.mu.Lock()
	defer s.mu.Unlock()

	var oldURL string
	if s.current != nil {
		oldURL = s.current.PreviewURL
	}
	url, err := s.previews.Replace(oldURL, file.Data, mime)
	if err != nil {
		return domain.SourceImage{}, fmt.Errorf("imagestore: replace preview: %w", err)
	}
	width, height := Dimensions(file.Data)
	src := domain.SourceImage{
		Name:       file.Name,
		Data:       file.Data,
		MIMEType:   mime,
		PreviewURL: url,
		Width:      width,
		Height:     height,
	}
	s.current = &src
	return src, nil
}

// Current returns the source image, if one is set.
func (s *Store) Current() (domain.SourceImage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.SourceImage{}, false
	}
	return *s.current, true
}

// Close releases the live preview.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.previews.Revoke(s.current.PreviewURL)
		s.current = nil
	}
}
