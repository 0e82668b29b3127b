package tonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
)

// tones renders a sum of equal-amplitude sines.
func tones(sampleRate, n int, amplitude float64, freqs ...float64) []int16 {
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

func TestExtractChordMajorTriad(t *testing.T) {
	// One second chunks put every integer frequency on its own bin.
	samples := tones(44100, 44100, 8000, 262, 330, 392)
	chord := ExtractChord(samples, 44100, 3)
	assert.ElementsMatch(t, []int{0, 4, 7}, []int(chord))
}

func TestExtractChordMinorTriadAmongMoreNotes(t *testing.T) {
	samples := tones(44100, 44100, 8000, 349, 415, 523)
	chord := ExtractChord(samples, 44100, 6)
	require.LessOrEqual(t, len(chord), 6)

	names := chord.Names()
	for _, want := range []string{"F4", "Ab4", "C5"} {
		assert.Contains(t, names, want)
	}
}

func TestExtractChordOctaves(t *testing.T) {
	samples := tones(44100, 44100, 10000, 262, 523)
	chord := ExtractChord(samples, 44100, 2)
	assert.ElementsMatch(t, []string{"C4", "C5"}, chord.Names())
	assert.Equal(t, []chroma.PitchClass{0}, chord.PitchClasses())
}

func TestExtractChordLoudestFirst(t *testing.T) {
	samples := make([]int16, 8000)
	loud := tones(8000, 8000, 12000, 392)
	quiet := tones(8000, 8000, 3000, 262)
	for i := range samples {
		samples[i] = loud[i] + quiet[i]
	}
	chord := ExtractChord(samples, 8000, 2)
	assert.Equal(t, Chord{7, 0}, chord)
}

func TestExtractChordDegenerate(t *testing.T) {
	assert.Empty(t, ExtractChord(nil, 44100, 4))
	assert.Empty(t, ExtractChord([]int16{100}, 44100, 4))
	assert.Empty(t, ExtractChord(tones(8000, 800, 1000, 440), 8000, 0))
}

func TestChordsByChunk(t *testing.T) {
	first := tones(8000, 8000, 10000, 262)
	second := tones(8000, 8000, 10000, 392)
	tail := tones(8000, 100, 10000, 392)

	samples := append(append(append([]int16{}, first...), second...), tail...)
	chords := ChordsByChunk(samples, 8000, 1, 8000)
	require.Len(t, chords, 3)
	assert.Equal(t, Chord{0}, chords[0])
	assert.Equal(t, Chord{7}, chords[1])
	assert.Len(t, chords[2], 1)

	assert.Nil(t, ChordsByChunk(samples, 8000, 1, 0))
	assert.Empty(t, ChordsByChunk(nil, 8000, 1, 8000))
}
