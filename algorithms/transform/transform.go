package transform

import (
	"fmt"
	"slices"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
)

// Kind enumerates the supported note transforms. The set is closed; each
// kind declares which scale degrees it moves and in which direction.
type Kind int

const (
	KindIdentity Kind = iota
	KindMajorToHarmonicMinor
	KindMajorToNaturalMinor
	KindHarmonicMinorToMajor
	KindNaturalMinorToMajor
)

type kindSpec struct {
	name      string
	altered   []int // offsets above the tonic that move
	direction int   // semitones added to an altered note
}

var kindSpecs = map[Kind]kindSpec{
	KindIdentity: {name: "identity"},
	// C D Eb F G Ab B
	KindMajorToHarmonicMinor: {name: "major_to_harmonic_minor", altered: []int{4, 9}, direction: -1},
	// C D Eb F G Ab Bb
	KindMajorToNaturalMinor: {name: "major_to_natural_minor", altered: []int{4, 9, 11}, direction: -1},
	KindHarmonicMinorToMajor: {name: "harmonic_minor_to_major", altered: []int{3, 8}, direction: 1},
	KindNaturalMinorToMajor:  {name: "natural_minor_to_major", altered: []int{3, 8, 10}, direction: 1},
}

func (k Kind) String() string {
	if s, ok := kindSpecs[k]; ok {
		return s.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Altered returns the offsets above the tonic that this kind moves.
func (k Kind) Altered() []int {
	return slices.Clone(kindSpecs[k].altered)
}

// Direction returns +1 or -1 for transforms that move notes, 0 for identity.
func (k Kind) Direction() int {
	return kindSpecs[k].direction
}

// Transform rewrites notes relative to a tonic.
type Transform struct {
	Kind  Kind
	Tonic chroma.PitchClass
}

// Identity leaves every note unchanged and skips spectral processing.
var Identity = Transform{Kind: KindIdentity}

// New validates kind and tonic.
func New(kind Kind, tonic int) (Transform, error) {
	if _, ok := kindSpecs[kind]; !ok {
		return Transform{}, fmt.Errorf("unknown transform kind %d", int(kind))
	}
	pc := chroma.PitchClass(tonic)
	if !pc.Valid() {
		return Transform{}, fmt.Errorf("transform tonic %d out of range", tonic)
	}
	return Transform{Kind: kind, Tonic: pc}, nil
}

// IsIdentity reports whether the transform is the no-op.
func (t Transform) IsIdentity() bool {
	return t.Kind == KindIdentity
}

// Apply moves note by the kind's direction when its degree above the tonic
// is in the altered set.
func (t Transform) Apply(note int) int {
	spec := kindSpecs[t.Kind]
	if spec.direction == 0 {
		return note
	}
	if slices.Contains(spec.altered, chroma.Mod12(note-int(t.Tonic))) {
		return note + spec.direction
	}
	return note
}

// ApplyMicrotone applies the transform to the nearest semitone and keeps the
// fractional tuning deviation, so 0.3 under a transform that maps 0 to -1
// becomes -0.7.
func (t Transform) ApplyMicrotone(note float64) float64 {
	rounded := chroma.RoundNote(note)
	return float64(t.Apply(rounded)-rounded) + note
}

// Inverse returns the transform that moves the same notes back, when one
// exists in the closed set.
func (t Transform) Inverse() (Transform, bool) {
	var k Kind
	switch t.Kind {
	case KindIdentity:
		return t, true
	case KindMajorToHarmonicMinor:
		k = KindHarmonicMinorToMajor
	case KindMajorToNaturalMinor:
		k = KindNaturalMinorToMajor
	case KindHarmonicMinorToMajor:
		k = KindMajorToHarmonicMinor
	case KindNaturalMinorToMajor:
		k = KindMajorToNaturalMinor
	default:
		return Transform{}, false
	}
	return Transform{Kind: k, Tonic: t.Tonic}, true
}

func (t Transform) String() string {
	if t.IsIdentity() {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Tonic)
}
