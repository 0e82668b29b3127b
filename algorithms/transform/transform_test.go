package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMajorToHarmonicMinor(t *testing.T) {
	tr, err := New(KindMajorToHarmonicMinor, 0)
	require.NoError(t, err)

	tests := []struct{ in, want int }{
		{0, 0}, {2, 2}, {4, 3}, {5, 5}, {7, 7}, {9, 8}, {11, 11},
		{16, 15}, // E5
		{-8, -9}, // E3
		{-3, -4}, // A3
		{3, 3},   // already minor third
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.Apply(tt.in), "note %d", tt.in)
	}
}

func TestApplyRelativeToTonic(t *testing.T) {
	dMajor := Transform{Kind: KindMajorToNaturalMinor, Tonic: 2}
	assert.Equal(t, 5, dMajor.Apply(6))   // F# -> F
	assert.Equal(t, 10, dMajor.Apply(11)) // B -> Bb
	assert.Equal(t, 0, dMajor.Apply(1))   // C# -> C
	assert.Equal(t, 2, dMajor.Apply(2))

	aMinor := Transform{Kind: KindHarmonicMinorToMajor, Tonic: 9}
	assert.Equal(t, 1, aMinor.Apply(0)) // C -> C#
	assert.Equal(t, 6, aMinor.Apply(5)) // F -> F#
	assert.Equal(t, 7, aMinor.Apply(7)) // G stays
	assert.Equal(t, 9, aMinor.Apply(9))

	aNatural := Transform{Kind: KindNaturalMinorToMajor, Tonic: 9}
	assert.Equal(t, 8, aNatural.Apply(7)) // G -> G#
}

func TestIdentityApply(t *testing.T) {
	for n := -30; n < 30; n++ {
		assert.Equal(t, n, Identity.Apply(n))
		assert.Equal(t, float64(n)+0.25, Identity.ApplyMicrotone(float64(n)+0.25))
	}
	assert.True(t, Identity.IsIdentity())
}

func TestApplyMicrotoneKeepsTuning(t *testing.T) {
	tr := Transform{Kind: KindMajorToHarmonicMinor, Tonic: 0}
	assert.InDelta(t, 3.3, tr.ApplyMicrotone(4.3), 1e-12)
	assert.InDelta(t, 2.6, tr.ApplyMicrotone(3.6), 1e-12)
	assert.InDelta(t, 7.45, tr.ApplyMicrotone(7.45), 1e-12)
	assert.InDelta(t, -9.1, tr.ApplyMicrotone(-8.1), 1e-12)
}

func TestInverseRestoresScale(t *testing.T) {
	major := []int{0, 2, 4, 5, 7, 9, 11}
	for _, kind := range []Kind{KindMajorToHarmonicMinor, KindMajorToNaturalMinor} {
		for tonic := range 12 {
			tr, err := New(kind, tonic)
			require.NoError(t, err)
			inv, ok := tr.Inverse()
			require.True(t, ok)
			assert.Equal(t, tr.Tonic, inv.Tonic)
			assert.Equal(t, -kind.Direction(), inv.Kind.Direction())

			for _, degree := range major {
				note := tonic + degree
				assert.Equal(t, note, inv.Apply(tr.Apply(note)), "%s note %d", tr, note)
			}
		}
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(KindMajorToHarmonicMinor, 12)
	assert.Error(t, err)
	_, err = New(Kind(42), 0)
	assert.Error(t, err)
}

func TestKindMetadata(t *testing.T) {
	assert.Equal(t, []int{4, 9}, KindMajorToHarmonicMinor.Altered())
	assert.Equal(t, []int{4, 9, 11}, KindMajorToNaturalMinor.Altered())
	assert.Equal(t, []int{3, 8}, KindHarmonicMinorToMajor.Altered())
	assert.Equal(t, []int{3, 8, 10}, KindNaturalMinorToMajor.Altered())
	assert.Empty(t, KindIdentity.Altered())

	assert.Equal(t, -1, KindMajorToNaturalMinor.Direction())
	assert.Equal(t, 1, KindNaturalMinorToMajor.Direction())
	assert.Equal(t, 0, KindIdentity.Direction())

	assert.Equal(t, "major_to_harmonic_minor", KindMajorToHarmonicMinor.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "major_to_natural_minor(A)", Transform{Kind: KindMajorToNaturalMinor, Tonic: 9}.String())
}
