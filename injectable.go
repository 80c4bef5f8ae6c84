package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/kdeps/schematics/cmd"
	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
)

// Injectable functions for testability
var (
	// OS operations
	OsExitFn       = os.Exit
	SignalNotifyFn = signal.Notify

	// Environment functions
	NewEnvironmentFn = environment.NewEnvironment

	// Command functions
	NewRootCommandFn = cmd.NewRootCommand

	// Logging functions
	GetLoggerFn = logging.GetLogger

	// Main function helpers for better testability
	SetupEnvironmentFn   = SetupEnvironment
	SetupSignalHandlerFn = SetupSignalHandler

	// Signal channel creation
	MakeSignalChanFn = func() chan os.Signal {
		return make(chan os.Signal, 1)
	}

	// Context creation
	ContextWithCancelFn = context.WithCancel

	// Afero filesystem
	NewOsFsFn = afero.NewOsFs
)
