package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-modal/modal"
)

var identifyFlags processingFlags

func init() {
	identifyFlags.register(identifyCmd)
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Prints the key segments of a song",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := identifyFlags.loadConfig(cmd)
		if err != nil {
			return err
		}
		proc, err := modal.NewProcessor(cfg)
		if err != nil {
			return err
		}
		input, err := decodeInput(cmd.Context(), identifyFlags.inputFile)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, ch := range input.Channels {
			_, seg, err := proc.Identify(ch, input.SampleRate)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "channel %d: score %d\n", i, seg.Score())
			if seg.IsEmpty() {
				fmt.Fprintln(w, "  no key identified")
				continue
			}
			for _, s := range seg.Segments() {
				start := float64(s.Range.Start) * cfg.ChunkSeconds()
				end := float64(s.Range.End) * cfg.ChunkSeconds()
				fmt.Fprintf(w, "  %8.2fs - %8.2fs  %-10s  score %d  -> %s\n",
					start, end, s.Key.Name(), s.Score, proc.Policy().TransformFor(s.Key))
			}
		}
		return nil
	},
}
