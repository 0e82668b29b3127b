package transcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// ErrUnsupportedFormat is returned for files the WAV reader rejects.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ReadWAV decodes a PCM WAV file into per-channel 16-bit samples.
func ReadWAV(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: invalid wav file: %s", ErrUnsupportedFormat, path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: invalid wav buffer: %s", ErrUnsupportedFormat, path)
	}

	interleaved := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		interleaved[i] = FloatToPCM(v)
	}

	return &AudioData{
		Channels:   Deinterleave(interleaved, buf.Format.NumChannels),
		SampleRate: buf.Format.SampleRate,
		Source:     path,
	}, nil
}

// WriteWAV encodes the audio as 16-bit PCM WAV, creating parent
// directories as needed.
func WriteWAV(path string, data *AudioData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	numCh := data.NumChannels()
	enc := wav.NewEncoder(f, data.SampleRate, 16, numCh, 1)

	interleaved := Interleave(data.Channels)
	samples := make([]float32, len(interleaved))
	for i, s := range interleaved {
		samples[i] = PCMToFloat(s)
	}

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  data.SampleRate,
			NumChannels: numCh,
		},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return enc.Close()
}
