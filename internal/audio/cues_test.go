package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("cue never ended")
	return 0, 0
}

func TestCuesAreFinite(t *testing.T) {
	for _, name := range []string{
		core.SoundSingle, core.SoundClear, core.SoundLose,
		core.SoundMark, core.SoundHover, core.SoundWin,
	} {
		t.Run(name, func(t *testing.T) {
			s := Cue(name, 1)
			if s == nil {
				t.Fatalf("Cue(%q) returned nil", name)
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if n > sampleRate.N(time.Second) {
				t.Errorf("cue is %d samples, expected under one second", n)
			}
			if peak == 0 {
				t.Error("cue is silent at full volume")
			}
		})
	}
}

func TestCueUnknownName(t *testing.T) {
	if Cue("SFX_Nope", 1) != nil {
		t.Error("unknown cue should be nil")
	}
}

func TestCueZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Cue(core.SoundLose, 0))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume, expected 0", peak)
	}
}

func TestEnvelopeReleasesToZero(t *testing.T) {
	s := Cue(core.SoundMark, 1)
	buf := make([][2]float64, sampleRate.N(40*time.Millisecond))
	n, _ := s.Stream(buf)
	if n == 0 {
		t.Fatal("no samples streamed")
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %v, expected near zero after release", last)
	}
}

func TestPlayerWithoutStartIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.SoundClear) // Should not panic or touch the speaker
	p.Close()
	Silent{}.Play(core.SoundLose)
}

func TestNames(t *testing.T) {
	if len(Names()) != 6 {
		t.Errorf("Names() = %v, expected 6 cues", Names())
	}
}
