package stylist

import "stylist/internal/domain"

// State is everything the page renders.
type State struct {
	Source     *domain.SourceImage
	Generation domain.GenerationState
	Error      string
}

type event interface{ isEvent() }

type sourceSet struct{ source domain.SourceImage }
type generationStarted struct{}
type generationSucceeded struct{ outfits []domain.Outfit }
type generationFailed struct{ message string }
type promoteFailed struct{ message string }

func (sourceSet) isEvent()           {}
func (generationStarted) isEvent()   {}
func (generationSucceeded) isEvent() {}
func (generationFailed) isEvent()    {}
func (promoteFailed) isEvent()       {}

// apply returns the state after ev. It never mutates s.
func apply(s State, ev event) State {
	switch ev := ev.(type) {
	case sourceSet:
		src := ev.source
		return State{Source: &src, Generation: domain.Idle()}
	case generationStarted:
		s.Generation = domain.InFlight()
		s.Error = ""
	case generationSucceeded:
		s.Generation = domain.Succeeded(ev.outfits)
		s.Error = ""
	case generationFailed:
		s.Generation = domain.Failed(ev.message)
		s.Error = ev.message
	case promoteFailed:
		s.Error = domain.PromoteErrorPrefix + ev.message
	}
	return s
}
