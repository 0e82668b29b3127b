package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
)

var notesFlags processingFlags

func init() {
	notesFlags.register(notesCmd)
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Prints the loudest notes of a whole file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := notesFlags.loadConfig(cmd)
		if err != nil {
			return err
		}
		input, err := decodeInput(cmd.Context(), notesFlags.inputFile)
		if err != nil {
			return err
		}
		for i, ch := range input.Channels {
			chord := tonal.ExtractChord(ch, input.SampleRate, cfg.NumberNotes)
			fmt.Fprintf(cmd.OutOrStdout(), "channel %d: %s\n", i, strings.Join(chord.Names(), " "))
		}
		return nil
	},
}
