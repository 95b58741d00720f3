package game

// Sounds is the audio capability injected into the runners. The UI layer
// supplies a real implementation; tests and headless callers use NopSounds.
type Sounds interface {
	Play(soundID string)
	Enabled() bool
}

const (
	SoundCorrect  = "correct"
	SoundWrong    = "wrong"
	SoundFlip     = "flip"
	SoundMatch    = "match"
	SoundComplete = "complete"
)

type NopSounds struct{}

func (NopSounds) Play(string) {}

func (NopSounds) Enabled() bool { return false }
