package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crytic/abibin/builder/config"
	"github.com/crytic/abibin/logging"
	"github.com/crytic/abibin/logging/colors"
	"github.com/crytic/abibin/utils"
	"github.com/rs/zerolog"
)

// cmdLogger is the logger that will be used for the cmd package
var cmdLogger = logging.NewLogger(zerolog.InfoLevel)

func init() {
	// Emit command logs to console
	cmdLogger.AddWriter(os.Stdout, logging.UNSTRUCTURED, true)
	cmdLogger = cmdLogger.NewSubLogger("module", logging.CLI_SERVICE)
}

// configureLogging sets up the global logger from the provided logging configuration. Console output is emitted
// unstructured, and if a log directory is configured, a structured log file is kept within it as well.
// Returns a function which closes any log file that was opened, or an error if one occurred.
func configureLogging(loggingConfig config.LoggingConfig) (func(), error) {
	if loggingConfig.NoColor {
		colors.DisableColor()
	}

	logging.GlobalLogger = logging.NewLogger(loggingConfig.Level)
	logging.GlobalLogger.AddWriter(os.Stdout, logging.UNSTRUCTURED, !loggingConfig.NoColor)
	cmdLogger.SetLevel(loggingConfig.Level)

	if loggingConfig.LogDirectory == "" {
		return func() {}, nil
	}

	// Keep a structured log file alongside the console output
	fileName := fmt.Sprintf("%s-%d.log", utils.GetFileNameWithoutExtension(logging.DefaultLogFileName), time.Now().Unix())
	file, err := utils.CreateFile(loggingConfig.LogDirectory, fileName)
	if err != nil {
		return nil, err
	}
	logging.GlobalLogger.AddWriter(file, logging.STRUCTURED, false)

	return func() {
		logging.GlobalLogger.RemoveWriter(file, logging.STRUCTURED, false)
		closeLogFile(file)
	}, nil
}

// closeLogFile closes the provided log file, reporting failures to the console.
func closeLogFile(file io.Closer) {
	if err := file.Close(); err != nil {
		cmdLogger.Warn("Failed to close the log file", err)
	}
}
