// Package sound plays optional audio cues while cards are revealed.
package sound

// Cue names, matching the file base names in the sound directory.
const (
	CueDraw    = "draw"
	CueCorrect = "correct"
	CueWrong   = "wrong"
	CueShuffle = "shuffle"
	CueEmpty   = "empty"
)

// Player plays a cue by name. Unknown cues are ignored.
type Player interface {
	Play(name string)
}

// Silent is a Player that plays nothing.
type Silent struct{}

func (Silent) Play(string) {}

// For returns the cue to play after a judged card, or CueDraw.
func For(correct, wrong bool) string {
	switch {
	case correct:
		return CueCorrect
	case wrong:
		return CueWrong
	default:
		return CueDraw
	}
}
