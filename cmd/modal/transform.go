package main

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-modal/logging"
	"github.com/RyanBlaney/sonido-modal/modal"
	"github.com/RyanBlaney/sonido-modal/transcode"
)

var (
	transformFlags processingFlags
	outputFile     string
)

func init() {
	transformFlags.register(transformCmd)
	transformCmd.Flags().StringVar(&outputFile, "output-file", "", "output WAV path (default: <input>-result.wav)")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Rewrites a song from one mode to another",
	Long: `Identifies the keys of the input, applies the translation policy to every
key segment and writes the result as a 16-bit WAV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := transformFlags.loadConfig(cmd)
		if err != nil {
			return err
		}
		proc, err := modal.NewProcessor(cfg)
		if err != nil {
			return err
		}

		input, err := decodeInput(cmd.Context(), transformFlags.inputFile)
		if err != nil {
			return err
		}

		out, _, err := proc.Process(input)
		if err != nil {
			return err
		}

		path := outputFile
		if path == "" {
			path = defaultOutputPath(transformFlags.inputFile)
		}
		if err := transcode.WriteWAV(path, out); err != nil {
			return err
		}

		logging.Info("Wrote transformed audio", logging.Fields{
			"output":   path,
			"policy":   proc.Policy().String(),
			"channels": out.NumChannels(),
			"duration": out.Duration().String(),
		})
		return nil
	},
}
