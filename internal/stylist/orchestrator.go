// Package stylist coordinates outfit generation for the current source image.
package stylist

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"stylist/internal/domain"
)

// GenerationClient produces one styled image for a source image. Each call
// is a single attempt and may return a different image.
type GenerationClient interface {
	Generate(ctx context.Context, src domain.SourceImage, style domain.StyleLabel) (string, error)
}

// OrchestratorOptions tunes the fan-out.
type OrchestratorOptions struct {
	// CancelSiblings cancels the remaining calls once one fails. Off by
	// default: failed cycles let the other calls finish and drop their
	// results.
	CancelSiblings bool
	Logger         zerolog.Logger
}

// Orchestrator fans one request per style out to a GenerationClient and joins
// them all-or-nothing. It does not guard against concurrent cycles.
type Orchestrator struct {
	client GenerationClient
	opts   OrchestratorOptions

	inflight atomic.Int64
	cycles   sync.WaitGroup
}

func NewOrchestrator(client GenerationClient, opts OrchestratorOptions) *Orchestrator {
	return &Orchestrator{client: client, opts: opts}
}

type callResult struct {
	style domain.StyleLabel
	err   error
}

// Generate returns the three outfits in style order, or a *domain.GenerationError
// carrying the first failure received. It returns on that first failure
// without waiting for the other calls.
func (o *Orchestrator) Generate(ctx context.Context, src domain.SourceImage) ([]domain.Outfit, error) {
	styles := domain.Styles()
	outfits := make([]domain.Outfit, len(styles))
	done := make(chan callResult, len(styles))

	var g *errgroup.Group
	callCtx := ctx
	if o.opts.CancelSiblings {
		g, callCtx = errgroup.WithContext(ctx)
	} else {
		g = new(errgroup.Group)
	}

	o.cycles.Add(1)
	for i, style := range styles {
		o.inflight.Add(1)
		g.Go(func() error {
			url, err := o.client.Generate(callCtx, src, style)
			o.inflight.Add(-1)
			if err == nil {
				outfits[i] = domain.Outfit{Style: style, ImageURL: url}
			}
			done <- callResult{style: style, err: err}
			return err
		})
	}
	go func() {
		_ = g.Wait()
		o.cycles.Done()
	}()

	for range styles {
		res := <-done
		if res.err != nil {
			o.opts.Logger.Warn().
				Err(res.err).
				Str("style", res.style.String()).
				Msg("stylist: generation call failed")
			return nil, &domain.GenerationError{Style: res.style, Err: res.err}
		}
	}
	return outfits, nil
}

// InFlight reports how many generation calls are still running, including
// calls left behind by failed cycles.
func (o *Orchestrator) InFlight() int {
	return int(o.inflight.Load())
}

// Wait blocks until every started cycle has finished or ctx is done.
func (o *Orchestrator) Wait(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		o.cycles.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
