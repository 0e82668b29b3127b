package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-modal/logging"
	"github.com/RyanBlaney/sonido-modal/modal/config"
	"github.com/RyanBlaney/sonido-modal/transcode"
)

var (
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "modal",
	Short: "Identifies the keys of a song and rewrites it in another mode",
	Long: `modal splits a recording into chunks, finds the loudest notes of each
chunk, segments the song into the best fitting keys and re-synthesizes each
segment with a modal transform such as major to minor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with MODAL_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

// processingFlags holds the flags shared by the analysis commands.
type processingFlags struct {
	inputFile         string
	numberNotes       int
	numberKeys        int
	chunkSizeMS       int
	translationPolicy string
	workers           int
}

func (f *processingFlags) register(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	cmd.Flags().StringVar(&f.inputFile, "input-file", "", "audio file to read (WAV, or anything ffmpeg decodes)")
	cmd.Flags().IntVar(&f.numberNotes, "number-notes", defaults.NumberNotes, "number of notes to use in key identification")
	cmd.Flags().IntVar(&f.numberKeys, "number-keys", defaults.NumberKeys, "number of keys expected in this song")
	cmd.Flags().IntVar(&f.chunkSizeMS, "chunk-size", int(defaults.ChunkSize/time.Millisecond), "size of chunks used in key identification and song transformation (ms)")
	cmd.Flags().StringVar(&f.translationPolicy, "translation-policy", defaults.TranslationPolicy, "major_to_minor(harmonic|natural), minor_to_major(harmonic|natural) or identity")
	cmd.Flags().IntVar(&f.workers, "workers", defaults.Workers, "transform worker pool size (0 = one per CPU)")
	_ = cmd.MarkFlagRequired("input-file")
}

// loadConfig layers defaults, the environment and explicitly set flags, in
// that order, and configures the global logger.
func (f *processingFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("number-notes") {
		cfg.NumberNotes = f.numberNotes
	}
	if flags.Changed("number-keys") {
		cfg.NumberKeys = f.numberKeys
	}
	if flags.Changed("chunk-size") {
		cfg.ChunkSize = time.Duration(f.chunkSizeMS) * time.Millisecond
	}
	if flags.Changed("translation-policy") {
		cfg.TranslationPolicy = f.translationPolicy
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(level)
	return cfg, nil
}

func decodeInput(ctx context.Context, path string) (*transcode.AudioData, error) {
	return transcode.NewDecoder(nil).DecodeFile(ctx, path)
}

// defaultOutputPath mirrors the input name: song.wav -> song-result.wav.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, ".wav") + "-result.wav"
}
