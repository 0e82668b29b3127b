package transcode

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWAVRoundTrip(t *testing.T) {
	const rate = 22050
	left := make([]int16, rate/10)
	right := make([]int16, rate/10)
	for i := range left {
		left[i] = int16(20000 * math.Sin(2*math.Pi*440*float64(i)/rate))
		right[i] = int16(-12000 * math.Sin(2*math.Pi*660*float64(i)/rate))
	}

	path := filepath.Join(t.TempDir(), "nested", "stereo.wav")
	require.NoError(t, WriteWAV(path, &AudioData{SampleRate: rate, Channels: [][]int16{left, right}}))

	data, err := ReadWAV(path)
	require.NoError(t, err)
	assert.Equal(t, rate, data.SampleRate)
	require.Equal(t, 2, data.NumChannels())
	require.Equal(t, len(left), data.Frames())
	assert.Equal(t, path, data.Source)

	for i := range left {
		assert.InDelta(t, left[i], data.Channels[0][i], 2)
		assert.InDelta(t, right[i], data.Channels[1][i], 2)
	}
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(path, []byte("this is not a riff file at all"), 0o644))

	_, err := ReadWAV(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteWAVValidates(t *testing.T) {
	err := WriteWAV(filepath.Join(t.TempDir(), "x.wav"), &AudioData{SampleRate: 0, Channels: [][]int16{{1}}})
	assert.Error(t, err)
}
