package main

import (
	"os"

	"github.com/mdobak/go-xerrors"

	"github.com/RyanBlaney/sonido-modal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(xerrors.New(err), "modal failed")
		os.Exit(1)
	}
}
