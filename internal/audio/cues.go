package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// note is one tone of a cue.
type note struct {
	freq    float64
	dur     time.Duration
	release time.Duration
}

// cueNotes lists each cue as a sequence of notes; a zero frequency is noise.
var cueNotes = map[string][]note{
	core.SoundSingle: {{freq: 660, dur: 60 * time.Millisecond, release: 40 * time.Millisecond}},
	core.SoundClear: {
		{freq: 0, dur: 90 * time.Millisecond, release: 80 * time.Millisecond},
	},
	core.SoundLose: {
		{freq: 220, dur: 150 * time.Millisecond, release: 60 * time.Millisecond},
		{freq: 110, dur: 300 * time.Millisecond, release: 200 * time.Millisecond},
	},
	core.SoundMark:  {{freq: 1320, dur: 40 * time.Millisecond, release: 20 * time.Millisecond}},
	core.SoundHover: {{freq: 1760, dur: 15 * time.Millisecond, release: 10 * time.Millisecond}},
	core.SoundWin: {
		{freq: 523.25, dur: 100 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 659.25, dur: 100 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 783.99, dur: 200 * time.Millisecond, release: 120 * time.Millisecond},
	},
}

// Names returns the known cue names.
func Names() []string {
	names := make([]string, 0, len(cueNotes))
	for n := range cueNotes {
		names = append(names, n)
	}
	return names
}

// Cue builds a fresh streamer for the named cue, or nil if it is unknown.
func Cue(name string, volume float64) beep.Streamer {
	notes, ok := cueNotes[name]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer())
	}
	return withVolume(beep.Seq(parts...), volume)
}

func (n note) streamer() beep.Streamer {
	var src beep.Streamer
	if n.freq == 0 {
		src = &noise{seed: 0x2545f491}
	} else {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return beep.Silence(sampleRate.N(n.dur))
		}
		src = tone
	}
	return &envelope{
		s:       beep.Take(sampleRate.N(n.dur), src),
		total:   sampleRate.N(n.dur),
		release: sampleRate.N(n.release),
	}
}

// withVolume scales linear volume onto beep's log2 scale.
// Zero or negative volume is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope fades the last release samples of s to zero.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	release int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			g := float64(left) / float64(e.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// noise is a deterministic white-noise source.
type noise struct {
	seed uint32
}

func (g *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		v := (float64(g.seed)/math.MaxUint32*2 - 1) * 0.3
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }
