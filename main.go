package main

import (
	"context"
	"os"
	"syscall"

	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
)

func main() {
	fs := NewOsFsFn()
	ctx, cancel := ContextWithCancelFn(context.Background())
	defer cancel()

	logger := GetLoggerFn()
	SetupSignalHandlerFn(cancel, logger)

	OsExitFn(run(fs, ctx, os.Args[1:], logger))
}

// run executes the CLI and returns the process exit code.
func run(fs afero.Fs, ctx context.Context, args []string, logger *logging.Logger) int {
	env, err := SetupEnvironmentFn(fs)
	if err != nil {
		logger.Error("Failed to set up environment", "error", err)
		return 1
	}
	if env.Debug == "1" {
		logger.EnableDebug()
	}

	rootCmd := NewRootCommandFn(fs, ctx, env, logger)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", "error", err)
		return 1
	}
	return 0
}

// SetupEnvironment initializes the environment using the filesystem.
func SetupEnvironment(fs afero.Fs) (*environment.Environment, error) {
	return NewEnvironmentFn(fs, nil)
}

// SetupSignalHandler cancels ctx on SIGINT or SIGTERM.
func SetupSignalHandler(cancelFunc context.CancelFunc, logger *logging.Logger) {
	sigs := MakeSignalChanFn()
	SignalNotifyFn(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		logger.Debug("Received signal, shutting down", "signal", sig)
		cancelFunc()
	}()
}
