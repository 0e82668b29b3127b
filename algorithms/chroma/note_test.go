package chroma

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinNoteRoundTrip(t *testing.T) {
	cases := []struct {
		chunkLength int
		sampleRate  int
	}{
		{44100, 44100},
		{22050, 44100},
		{4096, 48000},
		{1000, 8000},
		{2, 44100},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d@%d", c.chunkLength, c.sampleRate), func(t *testing.T) {
			for bin := 0; bin <= c.chunkLength/2; bin++ {
				note := NoteFromBin(c.chunkLength, c.sampleRate, bin)
				assert.Equal(t, bin, BinFromNote(c.chunkLength, c.sampleRate, note), "bin %d note %.4f", bin, note)
			}
		})
	}
}

func TestNoteFromBinReference(t *testing.T) {
	// With a one second chunk every bin is 1 Hz wide, so bin 261 is just
	// below middle C.
	note := NoteFromBin(44100, 44100, 261)
	assert.Equal(t, 0, RoundNote(note))
	assert.Less(t, note, 0.0)

	// An octave up is twelve semitones.
	assert.Equal(t, 12, RoundNote(NoteFromBin(44100, 44100, 523)))

	// A4 = 440 Hz is nine semitones above middle C.
	assert.Equal(t, 9, RoundNote(NoteFromBin(44100, 44100, 440)))
}

func TestNoteFromBinDCIsFinite(t *testing.T) {
	note := NoteFromBin(1024, 44100, 0)
	assert.False(t, math.IsInf(note, 0))
	assert.False(t, math.IsNaN(note))
	assert.Equal(t, 0, BinFromNote(1024, 44100, note))
}

func TestRoundNoteTiesToEven(t *testing.T) {
	assert.Equal(t, 0, RoundNote(0.5))
	assert.Equal(t, 2, RoundNote(1.5))
	assert.Equal(t, -2, RoundNote(-1.5))
	assert.Equal(t, 1, RoundNote(0.51))
}
