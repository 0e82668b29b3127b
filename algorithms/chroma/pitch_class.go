package chroma

import "fmt"

// PitchClass is a note identity modulo the octave (0=C, 1=Db, ..., 11=B).
type PitchClass int

// NumPitchClasses is the size of the chromatic scale.
const NumPitchClasses = 12

// pitchClassNames spells every class with flats, the way key names are
// printed in diagnostics.
var pitchClassNames = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// PitchClassOf reduces an integer note to its pitch class. Negative notes
// wrap upwards, so -1 is B.
func PitchClassOf(note int) PitchClass {
	return PitchClass(Mod12(note))
}

// Mod12 is the mathematical (always non-negative) remainder of n / 12.
func Mod12(n int) int {
	m := n % NumPitchClasses
	if m < 0 {
		m += NumPitchClasses
	}
	return m
}

// Valid reports whether the class lies in [0,12).
func (pc PitchClass) Valid() bool {
	return pc >= 0 && pc < NumPitchClasses
}

func (pc PitchClass) String() string {
	if !pc.Valid() {
		return fmt.Sprintf("PitchClass(%d)", int(pc))
	}
	return pitchClassNames[pc]
}

// ParsePitchClass accepts the flat spellings above as well as sharps
// ("C#", "D#", "G#", "A#") and returns the matching class.
func ParsePitchClass(name string) (PitchClass, error) {
	for i, n := range pitchClassNames {
		if n == name {
			return PitchClass(i), nil
		}
	}
	switch name {
	case "C#":
		return 1, nil
	case "D#":
		return 3, nil
	case "Gb":
		return 6, nil
	case "G#":
		return 8, nil
	case "A#":
		return 10, nil
	}
	return 0, fmt.Errorf("unknown pitch class %q", name)
}

// NoteName renders an integer note (semitones above middle C) in scientific
// pitch notation: 0 is "C4", 1 is "Db4", -12 is "C3".
func NoteName(note int) string {
	octave := note / NumPitchClasses
	if note < 0 && note%NumPitchClasses != 0 {
		octave--
	}
	return fmt.Sprintf("%s%d", PitchClassOf(note), octave+4)
}
