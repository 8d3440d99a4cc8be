package main

import (
	"os"

	"github.com/meenmo/zcb/internal/cli"
	"github.com/meenmo/zcb/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Getenv("ZCB_LOG_LEVEL"))

	root := cli.NewRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
