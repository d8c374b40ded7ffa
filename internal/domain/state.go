package domain

// Phase enumerates generation lifecycle states.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseInFlight  Phase = "in_flight"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// GenerationState is a tagged value: Outfits is set only when Phase is
// PhaseSucceeded and Message only when Phase is PhaseFailed.
type GenerationState struct {
	Phase   Phase
	Outfits []Outfit
	Message string
}

func Idle() GenerationState { return GenerationState{Phase: PhaseIdle} }

func InFlight() GenerationState { return GenerationState{Phase: PhaseInFlight} }

func Succeeded(outfits []Outfit) GenerationState {
	cp := make([]Outfit, len(outfits))
	copy(cp, outfits)
	return GenerationState{Phase: PhaseSucceeded, Outfits: cp}
}

func Failed(message string) GenerationState {
	return GenerationState{Phase: PhaseFailed, Message: message}
}

// Outfit returns the generated outfit for style when the state holds results.
func (g GenerationState) Outfit(style StyleLabel) (Outfit, bool) {
	for _, o := range g.Outfits {
		if o.Style == style {
			return o, true
		}
	}
	return Outfit{}, false
}
