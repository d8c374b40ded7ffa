package stylist

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"stylist/internal/domain"
	"stylist/internal/gallery"
	"stylist/internal/imagestore"
)

// Generator is the orchestration step the session drives.
type Generator interface {
	Generate(ctx context.Context, src domain.SourceImage) ([]domain.Outfit, error)
}

// Promoter resolves an outfit back into a source file.
type Promoter interface {
	Promote(ctx context.Context, o domain.Outfit) (imagestore.File, error)
}

// Session is the single state container behind the UI. Mutations are
// serialized; generation and fetching run outside the lock.
type Session struct {
	mu        sync.Mutex
	state     State
	store     *imagestore.Store
	generator Generator
	promoter  Promoter
	logger    zerolog.Logger
}

func NewSession(store *imagestore.Store, generator Generator, promoter Promoter, logger zerolog.Logger) *Session {
	return &Session{
		state:     State{Generation: domain.Idle()},
		store:     store,
		generator: generator,
		promoter:  promoter,
		logger:    logger,
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetSource installs file as the source image, discarding previous results
// and errors.
func (s *Session) SetSource(file imagestore.File) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSourceLocked(file)
}

func (s *Session) setSourceLocked(file imagestore.File) (State, error) {
	src, err := s.store.SetSource(file)
	if err != nil {
		return s.state, err
	}
	s.state = apply(s.state, sourceSet{source: src})
	s.logger.Debug().
		Str("name", src.Name).
		Str("mime", src.MIMEType).
		Int("bytes", len(src.Data)).
		Msg("stylist: source image set")
	return s.state, nil
}

// Generate runs one generation cycle for the current source. It refuses to
// start while another cycle is in flight.
func (s *Session) Generate(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.state.Source == nil {
		s.mu.Unlock()
		return s.Snapshot(), domain.ErrNoSource
	}
	if s.state.Generation.Phase == domain.PhaseInFlight {
		s.mu.Unlock()
		return s.Snapshot(), domain.ErrGenerationInFlight
	}
	src := *s.state.Source
	s.state = apply(s.state, generationStarted{})
	s.mu.Unlock()

	outfits, err := s.generator.Generate(ctx, src)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Source == nil || s.state.Source.PreviewURL != src.PreviewURL {
		// The source changed mid-flight; its results belong to nothing on screen.
		return s.state, err
	}
	if err != nil {
		s.state = apply(s.state, generationFailed{message: domain.Message(err)})
		return s.state, err
	}
	s.state = apply(s.state, generationSucceeded{outfits: outfits})
	return s.state, nil
}

// Promote re-uses the generated outfit for style as the new source image. On
// failure the gallery stays as it is and the error is shown.
func (s *Session) Promote(ctx context.Context, style domain.StyleLabel) (State, error) {
	s.mu.Lock()
	o, ok := s.state.Generation.Outfit(style)
	s.mu.Unlock()
	if !ok {
		return s.Snapshot(), domain.ErrOutfitNotFound
	}

	file, err := s.promoter.Promote(ctx, o)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		_, err = s.setSourceLocked(file)
	}
	if err != nil {
		var fe *domain.FetchError
		if !errors.As(err, &fe) {
			err = &domain.FetchError{URL: o.ImageURL, Err: err}
		}
		s.state = apply(s.state, promoteFailed{message: domain.Message(err)})
		return s.state, err
	}
	return s.state, nil
}

// Outfits returns the current results, if any.
func (s *Session) Outfits() []domain.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Generation.Phase != domain.PhaseSucceeded {
		return nil
	}
	out := make([]domain.Outfit, len(s.state.Generation.Outfits))
	copy(out, s.state.Generation.Outfits)
	return out
}

// Close releases the live preview.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Close()
}

var _ Promoter = (*gallery.Gallery)(nil)
var _ Generator = (*Orchestrator)(nil)
