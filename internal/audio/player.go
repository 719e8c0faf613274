// Package audio plays the game's sound cues. Cues are synthesized with beep
// so the binary ships without sound files; a missing audio device degrades
// to silence instead of failing the game.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes one-shot cues into a single speaker stream.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
}

// NewPlayer creates a player at the given volume in [0, 1].
// Nothing is audible until Start succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Start opens the audio device. On error the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues the named cue. Unknown names and a stopped player are no-ops.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	s := Cue(name, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Silent is a player that never makes a sound. SSH sessions use it since
// audio would play on the server.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}
