package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		name string
	}{
		{"major_to_minor", "major_to_minor(harmonic)"},
		{"major_to_minor(harmonic)", "major_to_minor(harmonic)"},
		{"major_to_minor(harmonic=True)", "major_to_minor(harmonic)"},
		{"major_to_minor(natural)", "major_to_minor(natural)"},
		{" major_to_minor( harmonic=false ) ", "major_to_minor(natural)"},
		{"minor_to_major", "minor_to_major(harmonic)"},
		{"minor_to_major(natural)", "minor_to_major(natural)"},
		{"identity", "identity"},
		{"none", "identity"},
	}
	for _, tt := range tests {
		p, err := ParsePolicy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.name, p.String(), tt.in)
	}
}

func TestParsePolicyErrors(t *testing.T) {
	for _, in := range []string{"", "lydian", "major_to_minor(dorian)", "major_to_minor(harmonic", "identity(harmonic)"} {
		_, err := ParsePolicy(in)
		assert.ErrorIs(t, err, ErrUnknownPolicy, in)
	}
}

func TestPolicyTransformFor(t *testing.T) {
	gMajor := tonal.MustKey(tonal.Major, 7)
	eMinor := tonal.MustKey(tonal.Minor, 4)

	toMinor := MajorToMinor(true)
	assert.Equal(t, Transform{Kind: KindMajorToHarmonicMinor, Tonic: 7}, toMinor.TransformFor(gMajor))
	assert.Equal(t, Identity, toMinor.TransformFor(eMinor))
	assert.Equal(t, Identity, toMinor.TransformFor(tonal.Key{}))

	assert.Equal(t, Transform{Kind: KindMajorToNaturalMinor, Tonic: 7}, MajorToMinor(false).TransformFor(gMajor))

	toMajor := MinorToMajor(false)
	assert.Equal(t, Transform{Kind: KindNaturalMinorToMajor, Tonic: 4}, toMajor.TransformFor(eMinor))
	assert.Equal(t, Identity, toMajor.TransformFor(gMajor))

	assert.Equal(t, Identity, IdentityPolicy().TransformFor(gMajor))
}
