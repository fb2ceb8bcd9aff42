// Package bell provides the failure-indication signal raised when a
// counted jump finds nothing. Implementations range from silent (for
// tests and embedding) to an audible tone.
package bell

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Ringer signals a failed jump to the user.
type Ringer interface {
	Ring()
}

// Null is a Ringer that does nothing.
type Null struct{}

// Ring implements Ringer.
func (Null) Ring() {}

// Counter is a Ringer that counts invocations. Test helper.
type Counter struct {
	Count int
}

// Ring implements Ringer.
func (c *Counter) Ring() {
	c.Count++
}

// Audio rings by playing a short sine tone through the system speaker.
// Useful when the host front end has no terminal bell of its own.
type Audio struct {
	sampleRate beep.SampleRate
	freq       float64
	duration   time.Duration

	initOnce sync.Once
	initErr  error
}

// NewAudio creates an audible ringer. Speaker initialization is
// deferred to the first Ring so construction never fails on machines
// without audio output.
func NewAudio() *Audio {
	return &Audio{
		sampleRate: beep.SampleRate(44100),
		freq:       440,
		duration:   80 * time.Millisecond,
	}
}

// Ring implements Ringer. Audio failures are swallowed; a bell that
// cannot sound must not break the jump that rang it.
func (a *Audio) Ring() {
	a.initOnce.Do(func() {
		a.initErr = speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/10))
	})
	if a.initErr != nil {
		return
	}
	sine, err := generators.SineTone(a.sampleRate, a.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(a.sampleRate.N(a.duration), sine))
}
