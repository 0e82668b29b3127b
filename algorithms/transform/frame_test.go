package transform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
)

func sines(sampleRate, n int, amplitude float64, freqs ...float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		var v float64
		for _, f := range freqs {
			v += amplitude * math.Sin(2*math.Pi*f*float64(i)/float64(sampleRate))
		}
		out[i] = int16(math.Round(v))
	}
	return out
}

func pitchClasses(samples []int16, sampleRate, numberNotes int) []chroma.PitchClass {
	return tonal.ExtractChord(samples, sampleRate, numberNotes).PitchClasses()
}

func TestIdentityFrameIsBitExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	frame := make([]int16, 4411)
	for i := range frame {
		frame[i] = int16(rng.Intn(65536) - 32768)
	}
	frame[0] = math.MinInt16
	frame[1] = math.MaxInt16

	out := Identity.ApplyToFrame(frame, 44100)
	assert.Equal(t, frame, out)

	// A copy, not an alias.
	out[0] = 0
	assert.Equal(t, int16(math.MinInt16), frame[0])

	assert.Equal(t, frame, Identity.ApplyToSong(frame, 44100, 0.05, 4))
}

func TestMajorToMinorAndBack(t *testing.T) {
	const rate = 44100
	frame := sines(rate, rate, 6000, 262, 330, 392)
	require.ElementsMatch(t, []chroma.PitchClass{0, 4, 7}, pitchClasses(frame, rate, 3))

	toMinor := Transform{Kind: KindMajorToHarmonicMinor, Tonic: 0}
	minor := toMinor.ApplyToFrame(frame, rate)
	require.Len(t, minor, len(frame))
	assert.ElementsMatch(t, []chroma.PitchClass{0, 3, 7}, pitchClasses(minor, rate, 3))

	toMajor, ok := toMinor.Inverse()
	require.True(t, ok)
	back := toMajor.ApplyToFrame(minor, rate)
	assert.ElementsMatch(t, []chroma.PitchClass{0, 4, 7}, pitchClasses(back, rate, 3))
}

func TestNonTonalContentPassesThrough(t *testing.T) {
	const rate = 44100
	tr := Transform{Kind: KindMajorToHarmonicMinor, Tonic: 0}

	// 10548 Hz is an E, but 64 semitones above middle C.
	high := sines(rate, rate, 8000, 10548)
	out := tr.ApplyToFrame(high, rate)
	for i := range high {
		assert.InDelta(t, high[i], out[i], 3)
	}

	dc := make([]int16, 1000)
	for i := range dc {
		dc[i] = 1000
	}
	assert.Equal(t, dc, tr.ApplyToFrame(dc, rate))
}

func TestApplyToSongMatchesFrameByFrame(t *testing.T) {
	const rate = 8000
	tr := Transform{Kind: KindMajorToNaturalMinor, Tonic: 7}

	var song []int16
	for _, f := range []float64{392, 494, 587, 740, 330, 262} {
		song = append(song, sines(rate, 2000, 5000, f)...)
	}
	song = append(song, sines(rate, 777, 5000, 440)...)

	var want []int16
	for start := 0; start < len(song); start += 2000 {
		end := min(start+2000, len(song))
		want = append(want, tr.ApplyToFrame(song[start:end], rate)...)
	}

	for _, workers := range []int{0, 1, 3, 16} {
		got := tr.ApplyToSong(song, rate, 0.25, workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestApplyToSongEmpty(t *testing.T) {
	tr := Transform{Kind: KindMajorToHarmonicMinor}
	assert.Empty(t, tr.ApplyToSong(nil, 44100, 1, 2))
	assert.Empty(t, tr.ApplyToFrame(nil, 44100))
}

func TestToPCMClampsAndRounds(t *testing.T) {
	got := toPCM([]float64{40000, -40000, 1.5, 2.5, -0.5, -1.6, 32767.4})
	assert.Equal(t, []int16{32767, -32768, 2, 2, 0, -2, 32767}, got)
}
