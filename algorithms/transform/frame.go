package transform

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
	"github.com/RyanBlaney/sonido-modal/algorithms/spectral"
)

// Notes outside [MinTonalNote, MaxTonalNote] semitones from middle C are
// treated as noise and keep their bin.
const (
	MinTonalNote = -48
	MaxTonalNote = 60
)

// ApplyToFrame rewrites the pitch content of one frame and resynthesizes it.
//
// Every bin from DC up to Nyquist is mapped to a note, transformed, and
// mapped back to a bin. Its coefficient is accumulated there and its
// conjugate in the mirror bin, which keeps the spectrum conjugate symmetric
// so the inverse transform is real. Output samples are rounded and clamped
// to the int16 range.
func (t Transform) ApplyToFrame(samples []int16, sampleRate int) []int16 {
	if t.IsIdentity() {
		return clonePCM(samples)
	}
	if len(samples) == 0 {
		return []int16{}
	}

	f := spectral.NewFFT()
	freqs := f.ComputePCM(samples)
	size := len(freqs)
	result := make([]complex128, size)

	for idx := 0; idx <= size/2; idx++ {
		note := chroma.NoteFromBin(size, sampleRate, idx)
		modified := note
		if note >= MinTonalNote && note <= MaxTonalNote {
			modified = t.ApplyMicrotone(note)
		}
		dst := chroma.BinFromNote(size, sampleRate, modified)
		if dst < 0 || dst >= size {
			continue
		}
		result[dst] += freqs[idx]
		if dst != 0 && 2*dst < size {
			result[size-dst] += cmplx.Conj(freqs[idx])
		}
	}

	return toPCM(f.ComputeInverseReal(result))
}

// ApplyToSong splits samples into consecutive frames of segmentSeconds
// (the last may be shorter), transforms each independently, and concatenates
// the results in input order. Frames are spread over a pool of workers;
// workers < 1 uses one per CPU.
func (t Transform) ApplyToSong(samples []int16, sampleRate int, segmentSeconds float64, workers int) []int16 {
	if t.IsIdentity() {
		return clonePCM(samples)
	}
	frameSize := int(float64(sampleRate) * segmentSeconds)
	if frameSize < 1 || len(samples) == 0 {
		return clonePCM(samples)
	}

	numFrames := (len(samples) + frameSize - 1) / frameSize
	results := make([][]int16, numFrames)

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, numFrames)

	jobs := make(chan int, numFrames)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frameIdx := range jobs {
				start := frameIdx * frameSize
				end := min(start+frameSize, len(samples))
				results[frameIdx] = t.ApplyToFrame(samples[start:end], sampleRate)
			}
		}()
	}

	for i := range numFrames {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]int16, 0, len(samples))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func clonePCM(samples []int16) []int16 {
	out := make([]int16, len(samples))
	copy(out, samples)
	return out
}

// toPCM rounds half-to-even and clamps instead of wrapping.
func toPCM(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		r := math.RoundToEven(v)
		switch {
		case r > math.MaxInt16:
			out[i] = math.MaxInt16
		case r < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(r)
		}
	}
	return out
}
