package modal

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
	"github.com/RyanBlaney/sonido-modal/algorithms/transform"
	"github.com/RyanBlaney/sonido-modal/logging"
	"github.com/RyanBlaney/sonido-modal/modal/config"
	"github.com/RyanBlaney/sonido-modal/transcode"
)

// SegmentReport describes one identified key region of a channel.
type SegmentReport struct {
	tonal.Segment
	StartTime time.Duration       `json:"start_time"`
	EndTime   time.Duration       `json:"end_time"`
	Transform transform.Transform `json:"-"`

	// MeanChunkScore is the key's average chord score per chunk, a rough
	// measure of how clearly the region sits in its key.
	MeanChunkScore float64 `json:"mean_chunk_score"`
}

// ChannelResult is the outcome of processing one channel.
type ChannelResult struct {
	Samples      []int16
	Chords       []tonal.Chord
	Segmentation tonal.Segmentation
	Reports      []SegmentReport
}

// Processor runs chord extraction, key segmentation and the per-segment
// transform over whole waveforms.
type Processor struct {
	config  *config.Config
	policy  transform.Policy
	catalog []tonal.Key
	logger  logging.Logger
}

// NewProcessor validates cfg and builds a processor. A nil cfg uses the
// defaults.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	return &Processor{
		config:  cfg,
		policy:  policy,
		catalog: tonal.AllMajorsMinors,
		logger: logging.WithFields(logging.Fields{
			"component": "modal_processor",
		}),
	}, nil
}

// Policy returns the translation policy in use.
func (p *Processor) Policy() transform.Policy {
	return p.policy
}

// Identify extracts one chord per chunk and finds the best segmentation
// into at most NumberKeys keys.
func (p *Processor) Identify(samples []int16, sampleRate int) ([]tonal.Chord, tonal.Segmentation, error) {
	chunkSamples, err := p.config.ChunkSamples(sampleRate)
	if err != nil {
		return nil, tonal.Segmentation{}, err
	}

	chords := tonal.ChordsByChunk(samples, sampleRate, p.config.NumberNotes, chunkSamples)
	seg := tonal.BestMultipleKeys(chords, p.config.NumberKeys, p.catalog)

	p.logger.Debug("Key identification completed", logging.Fields{
		"chunks":   len(chords),
		"segments": seg.Len(),
		"score":    seg.Score(),
	})
	return chords, seg, nil
}

// ProcessChannel identifies the keys of a mono waveform and applies the
// policy's transform to each key region. The output has the same length as
// the input.
func (p *Processor) ProcessChannel(samples []int16, sampleRate int) (*ChannelResult, error) {
	chords, seg, err := p.Identify(samples, sampleRate)
	if err != nil {
		return nil, err
	}
	chunkSamples, _ := p.config.ChunkSamples(sampleRate)

	result := &ChannelResult{
		Chords:       chords,
		Segmentation: seg,
		Samples:      make([]int16, 0, len(samples)),
	}

	for _, segment := range seg.Segments() {
		start := min(segment.Range.Start*chunkSamples, len(samples))
		end := min(segment.Range.End*chunkSamples, len(samples))

		t := p.policy.TransformFor(segment.Key)
		report := p.report(segment, chords, chunkSamples, sampleRate, t)
		result.Reports = append(result.Reports, report)

		p.logger.Info("Key segment", logging.Fields{
			"start":     segment.Range.Start,
			"end":       segment.Range.End,
			"key":       segment.Key.Name(),
			"score":     segment.Score,
			"transform": t.String(),
		})

		out := t.ApplyToSong(samples[start:end], sampleRate, p.config.ChunkSeconds(), p.config.Workers)
		result.Samples = append(result.Samples, out...)
	}

	if len(result.Samples) != len(samples) {
		return nil, fmt.Errorf("segmentation covers %d of %d samples", len(result.Samples), len(samples))
	}
	return result, nil
}

func (p *Processor) report(segment tonal.Segment, chords []tonal.Chord, chunkSamples, sampleRate int, t transform.Transform) SegmentReport {
	scores := make([]float64, 0, segment.Range.Len())
	for _, c := range chords[segment.Range.Start:segment.Range.End] {
		scores = append(scores, float64(segment.Key.ScoreChord(c)))
	}
	var mean float64
	if len(scores) > 0 {
		mean = stat.Mean(scores, nil)
	}

	chunk := time.Duration(chunkSamples) * time.Second / time.Duration(sampleRate)
	return SegmentReport{
		Segment:        segment,
		StartTime:      time.Duration(segment.Range.Start) * chunk,
		EndTime:        time.Duration(segment.Range.End) * chunk,
		Transform:      t,
		MeanChunkScore: mean,
	}
}

// Process runs every channel independently through the full pipeline and
// reassembles the result with the input's rate and channel count.
func (p *Processor) Process(data *transcode.AudioData) (*transcode.AudioData, []*ChannelResult, error) {
	if err := data.Validate(); err != nil {
		return nil, nil, err
	}

	out := &transcode.AudioData{
		SampleRate: data.SampleRate,
		Channels:   make([][]int16, data.NumChannels()),
		Source:     data.Source,
	}
	results := make([]*ChannelResult, data.NumChannels())

	for i, ch := range data.Channels {
		start := time.Now()
		res, err := p.ProcessChannel(ch, data.SampleRate)
		if err != nil {
			return nil, nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out.Channels[i] = res.Samples
		results[i] = res

		p.logger.Debug("Channel processed", logging.Fields{
			"channel":     i,
			"samples":     len(ch),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return out, results, nil
}
