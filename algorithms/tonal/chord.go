package tonal

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
	"github.com/RyanBlaney/sonido-modal/algorithms/spectral"
)

// MinChunkSamples is the shortest chunk that yields any spectral bins.
// Shorter chunks produce an empty chord.
const MinChunkSamples = 2

// Chord holds the distinct integer notes (semitones above middle C, not yet
// reduced to pitch classes) that dominate one chunk, loudest first.
type Chord []int

// PitchClasses reduces the chord's notes modulo the octave, keeping order
// and dropping repeats.
func (c Chord) PitchClasses() []chroma.PitchClass {
	out := make([]chroma.PitchClass, 0, len(c))
	for _, n := range c {
		pc := chroma.PitchClassOf(n)
		if !slices.Contains(out, pc) {
			out = append(out, pc)
		}
	}
	return out
}

// Names renders every note in scientific pitch notation.
func (c Chord) Names() []string {
	names := make([]string, len(c))
	for i, n := range c {
		names[i] = chroma.NoteName(n)
	}
	return names
}

// ChordExtractor picks the loudest partials of a chunk.
type ChordExtractor struct {
	fft         *spectral.FFT
	numberNotes int
}

// NewChordExtractor creates an extractor returning at most numberNotes notes
// per chord.
func NewChordExtractor(numberNotes int) *ChordExtractor {
	return &ChordExtractor{
		fft:         spectral.NewFFT(),
		numberNotes: numberNotes,
	}
}

// Extract ranks the non-negative frequency half of the chunk's spectrum by
// magnitude and collects rounded notes in that order until numberNotes
// distinct notes are found or the bins run out.
func (ce *ChordExtractor) Extract(samples []int16, sampleRate int) Chord {
	if len(samples) < MinChunkSamples || ce.numberNotes < 1 {
		return Chord{}
	}

	spectrum := ce.fft.ComputePCM(samples)
	mags := spectral.HalfMagnitudes(spectrum)

	// Argsort is ascending; negate for loudest first.
	floats.Scale(-1, mags)
	order := make([]int, len(mags))
	floats.Argsort(mags, order)

	chord := make(Chord, 0, ce.numberNotes)
	for _, bin := range order {
		note := chroma.RoundNote(chroma.NoteFromBin(len(samples), sampleRate, bin))
		if slices.Contains(chord, note) {
			continue
		}
		chord = append(chord, note)
		if len(chord) == ce.numberNotes {
			break
		}
	}
	return chord
}

// ExtractChord is a convenience wrapper around ChordExtractor.Extract.
func ExtractChord(samples []int16, sampleRate, numberNotes int) Chord {
	return NewChordExtractor(numberNotes).Extract(samples, sampleRate)
}

// ChordsByChunk splits samples into consecutive chunks of chunkSamples
// samples (the last may be shorter) and extracts one chord per chunk.
func ChordsByChunk(samples []int16, sampleRate, numberNotes, chunkSamples int) []Chord {
	if chunkSamples < 1 {
		return nil
	}
	ce := NewChordExtractor(numberNotes)
	chords := make([]Chord, 0, (len(samples)+chunkSamples-1)/chunkSamples)
	for start := 0; start < len(samples); start += chunkSamples {
		end := min(start+chunkSamples, len(samples))
		chords = append(chords, ce.Extract(samples[start:end], sampleRate))
	}
	return chords
}
