package core

// Pacer splits the render frame clock into engine steps: the engine moves
// once every MoveEvery frames while the screen redraws on every frame.
type Pacer struct {
	moveEvery int
	frame     int
}

// NewPacer returns a pacer that fires on every moveEvery-th frame.
// Values below 1 are treated as 1.
func NewPacer(moveEvery int) Pacer {
	return Pacer{moveEvery: Max(moveEvery, 1)}
}

// Frame advances the clock by one frame and reports whether the engine
// should step on this frame.
func (p *Pacer) Frame() bool {
	p.frame++
	if p.frame >= p.moveEvery {
		p.frame = 0
		return true
	}
	return false
}

// Reset restarts the count so the next step is a full period away.
func (p *Pacer) Reset() {
	p.frame = 0
}

// MoveEvery returns the number of frames per engine step.
func (p Pacer) MoveEvery() int {
	return p.moveEvery
}
