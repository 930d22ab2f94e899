package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cliLogger = zap.NewNop()

// initLogger installs the process logger. Verbose runs log at debug level in
// the development format; otherwise only warnings and errors are written.
func initLogger(verbose bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	cliLogger = logger
	zap.ReplaceGlobals(logger)
	return nil
}

func closeLogger() {
	_ = cliLogger.Sync()
}
