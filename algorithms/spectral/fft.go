package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps mjibson/go-dsp for the full-length transforms used by chord
// extraction and the transform engine. Frames are rarely a power of two
// (a second of audio at 44.1 kHz is 44100 samples); go-dsp falls back to
// Bluestein for those sizes.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute returns the full complex spectrum of a real signal.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// ComputePCM is Compute for 16-bit PCM samples.
func (f *FFT) ComputePCM(samples []int16) []complex128 {
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}
	return f.Compute(x)
}

// ComputeInverseReal computes the inverse FFT and keeps the real part only.
// The caller is responsible for the spectrum being conjugate symmetric if the
// imaginary part is expected to vanish.
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}
	return realResult
}

// HalfMagnitudes returns |X[k]| for k in [0, len/2), the non-negative
// frequency half of a real signal's spectrum.
func HalfMagnitudes(spectrum []complex128) []float64 {
	half := len(spectrum) / 2
	mags := make([]float64, half)
	for i := range half {
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return mags
}
