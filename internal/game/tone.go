package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/colorator/internal/config"
)

// toneAttack is the fade-in that keeps the tone from clicking.
const toneAttack = 5 * time.Millisecond

// tonePlayer sounds a short sine blip whose pitch follows the selected hue.
// The speaker is opened on first use.
type tonePlayer struct {
	enabled bool
	ready   bool
	rate    beep.SampleRate
}

func newTonePlayer(enabled bool) *tonePlayer {
	return &tonePlayer{
		enabled: enabled,
		rate:    beep.SampleRate(config.ToneSampleRate),
	}
}

func (t *tonePlayer) play(angle int) error {
	if !t.enabled {
		return nil
	}
	if !t.ready {
		if err := speaker.Init(t.rate, t.rate.N(time.Second/20)); err != nil {
			// No audio device; stay quiet from now on.
			t.enabled = false
			return fmt.Errorf("init speaker: %w", err)
		}
		t.ready = true
	}
	freq := toneFrequency(angle)
	logDebug("tone %.1f Hz for hue %d", freq, angle)
	speaker.Play(sineTone(t.rate, freq, config.ToneMillis*time.Millisecond, config.ToneVolume))
	return nil
}

// toneFrequency rises config.ToneOctaves octaves over the hue circle,
// starting at config.ToneBaseHz for red.
func toneFrequency(angle int) float64 {
	hue := math.Mod(float64(angle), 360)
	if hue < 0 {
		hue += 360
	}
	return config.ToneBaseHz * math.Pow(2, config.ToneOctaves*hue/360)
}

// sineTone is a mono sine wave on both channels with a short fade-in and a
// linear fade-out.
func sineTone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := rate.N(d)
	attack := rate.N(toneAttack)
	step := freq / float64(rate)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := clamp01(float64(total-pos) / float64(total))
			if attack > 0 && pos < attack {
				env *= float64(pos) / float64(attack)
			}
			v := volume * env * math.Sin(2*math.Pi*step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
