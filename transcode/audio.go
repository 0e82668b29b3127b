package transcode

import (
	"fmt"
	"math"
	"time"
)

// AudioData is a decoded waveform: 16-bit PCM, one slice per channel.
type AudioData struct {
	Channels   [][]int16 `json:"-"`
	SampleRate int       `json:"sample_rate"`
	Source     string    `json:"source,omitempty"`
}

// NumChannels returns the channel count.
func (a *AudioData) NumChannels() int {
	return len(a.Channels)
}

// Frames returns the number of samples per channel.
func (a *AudioData) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Duration is the playing time of the waveform.
func (a *AudioData) Duration() time.Duration {
	if a.SampleRate <= 0 {
		return 0
	}
	return time.Duration(a.Frames()) * time.Second / time.Duration(a.SampleRate)
}

// Validate checks that the data has a rate and equally long channels.
func (a *AudioData) Validate() error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", a.SampleRate)
	}
	if len(a.Channels) == 0 {
		return fmt.Errorf("audio has no channels")
	}
	for i, ch := range a.Channels {
		if len(ch) != len(a.Channels[0]) {
			return fmt.Errorf("channel %d has %d samples, channel 0 has %d", i, len(ch), len(a.Channels[0]))
		}
	}
	return nil
}

// Deinterleave splits frame-interleaved samples into numChannels slices.
// Trailing samples that do not fill a whole frame are dropped.
func Deinterleave(interleaved []int16, numChannels int) [][]int16 {
	if numChannels < 1 {
		return nil
	}
	frames := len(interleaved) / numChannels
	out := make([][]int16, numChannels)
	for c := range out {
		out[c] = make([]int16, frames)
	}
	for i := range frames {
		for c := range numChannels {
			out[c][i] = interleaved[i*numChannels+c]
		}
	}
	return out
}

// Interleave is the inverse of Deinterleave. Channels shorter than the
// first are padded with silence.
func Interleave(channels [][]int16) []int16 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]int16, frames*len(channels))
	for c, ch := range channels {
		for i := 0; i < frames && i < len(ch); i++ {
			out[i*len(channels)+c] = ch[i]
		}
	}
	return out
}

// pcmScale maps normalized float samples to the 16-bit range.
const pcmScale = 32768.0

// FloatToPCM converts a normalized [-1, 1] sample to int16, clamping.
func FloatToPCM(v float32) int16 {
	r := math.Round(float64(v) * pcmScale)
	switch {
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	}
	return int16(r)
}

// PCMToFloat converts an int16 sample to a normalized float.
func PCMToFloat(s int16) float32 {
	return float32(float64(s) / pcmScale)
}
