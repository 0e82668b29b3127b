package tonal

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-modal/algorithms/chroma"
)

var (
	// ErrInvalidProfile is returned when a key profile has weights outside
	// the chromatic scale or negative weights.
	ErrInvalidProfile = errors.New("invalid key profile")

	// ErrInvalidTonic is returned for tonics outside [0,12).
	ErrInvalidTonic = errors.New("invalid tonic")
)

// KeyProfile weights how strongly each scale degree, counted in semitones
// above the tonic, belongs to a mode. Offsets missing from the table weigh 0.
type KeyProfile struct {
	Name    string
	weights [chroma.NumPitchClasses]int
}

// NewKeyProfile builds a profile from offset -> weight pairs.
func NewKeyProfile(name string, weights map[int]int) (*KeyProfile, error) {
	p := &KeyProfile{Name: name}
	for offset, w := range weights {
		if offset < 0 || offset >= chroma.NumPitchClasses {
			return nil, fmt.Errorf("%w: %s: offset %d out of range", ErrInvalidProfile, name, offset)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: %s: negative weight %d at offset %d", ErrInvalidProfile, name, w, offset)
		}
		p.weights[offset] = w
	}
	return p, nil
}

func mustKeyProfile(name string, weights map[int]int) *KeyProfile {
	p, err := NewKeyProfile(name, weights)
	if err != nil {
		panic(err)
	}
	return p
}

// Score returns the weight of a note as if the tonic were C.
func (p *KeyProfile) Score(note int) int {
	return p.weights[chroma.Mod12(note)]
}

// Weights returns a copy of the 12-entry weight table.
func (p *KeyProfile) Weights() [chroma.NumPitchClasses]int {
	return p.weights
}

func (p *KeyProfile) String() string {
	return p.Name
}

var (
	// Major weights the tonic highest, then the major third and fifth.
	Major = mustKeyProfile("major", map[int]int{0: 5, 2: 1, 4: 3, 5: 1, 7: 3, 9: 1, 11: 1})

	// Minor weights the tonic highest, then the minor third and fifth. Both
	// the flat and the raised seventh count.
	Minor = mustKeyProfile("minor", map[int]int{0: 5, 2: 1, 3: 3, 5: 1, 7: 3, 8: 1, 10: 1, 11: 1})
)

// Key is a profile rooted at a tonic pitch class.
type Key struct {
	Profile *KeyProfile
	Tonic   chroma.PitchClass
}

// NewKey validates the tonic and profile. Scoring never fails, so all
// checks happen here.
func NewKey(profile *KeyProfile, tonic int) (Key, error) {
	if profile == nil {
		return Key{}, fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	pc := chroma.PitchClass(tonic)
	if !pc.Valid() {
		return Key{}, fmt.Errorf("%w: %d", ErrInvalidTonic, tonic)
	}
	return Key{Profile: profile, Tonic: pc}, nil
}

// MustKey is NewKey for statically known keys.
func MustKey(profile *KeyProfile, tonic int) Key {
	k, err := NewKey(profile, tonic)
	if err != nil {
		panic(err)
	}
	return k
}

// Score returns the profile weight of note relative to the tonic, so
// (A minor).Score(2) is the weight of B in A minor.
func (k Key) Score(note int) int {
	return k.Profile.Score(note - int(k.Tonic))
}

// ScoreChord sums Score over the chord. It is never negative.
func (k Key) ScoreChord(chord Chord) int {
	total := 0
	for _, note := range chord {
		total += k.Score(note)
	}
	return total
}

// IsZero reports whether k is the zero Key (no profile).
func (k Key) IsZero() bool {
	return k.Profile == nil
}

// Name renders the key for humans, e.g. "A minor".
func (k Key) Name() string {
	if k.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%s %s", k.Tonic, k.Profile.Name)
}

func (k Key) String() string {
	if k.IsZero() {
		return "Key(none)"
	}
	return fmt.Sprintf("Key(%s, %d)", k.Profile.Name, int(k.Tonic))
}

// AllMajorsMinors is the 24-key catalog: the twelve major keys by ascending
// tonic, then the twelve minor keys. Optimizer ties resolve to the earliest
// entry, so this order is part of the output contract.
var AllMajorsMinors = buildCatalog(Major, Minor)

func buildCatalog(profiles ...*KeyProfile) []Key {
	keys := make([]Key, 0, len(profiles)*chroma.NumPitchClasses)
	for _, p := range profiles {
		for tonic := range chroma.NumPitchClasses {
			keys = append(keys, MustKey(p, tonic))
		}
	}
	return keys
}
