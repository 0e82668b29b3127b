package chroma

import "math"

// MiddleC is the reference pitch in Hz. Notes are measured in semitones
// above it.
const MiddleC = 261.625565

// binOffset keeps the DC bin away from log(0). It biases every bin by the
// same fraction, and BinFromNote relies on that bias rounding away, so the
// value must not change.
const binOffset = 0.01

// NoteFromBin converts an FFT bin of a chunkLength-point transform into a
// (possibly fractional) note relative to middle C.
func NoteFromBin(chunkLength, sampleRate, bin int) float64 {
	hz := float64(sampleRate) / float64(chunkLength) * (float64(bin) + binOffset)
	return 12 * math.Log2(hz/MiddleC)
}

// BinFromNote is the inverse of NoteFromBin, rounded half-to-even to the
// nearest bin. BinFromNote(n, r, NoteFromBin(n, r, b)) == b for every bin.
func BinFromNote(chunkLength, sampleRate int, note float64) int {
	hz := MiddleC * math.Exp2(note/12)
	return int(math.RoundToEven(hz * float64(chunkLength) / float64(sampleRate)))
}

// RoundNote rounds a fractional note to the nearest semitone, ties to even.
func RoundNote(note float64) int {
	return int(math.RoundToEven(note))
}
