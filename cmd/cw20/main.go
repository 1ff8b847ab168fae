package main

import (
	"errors"
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/fatih/color"

	"github.com/baron-chain/cw20-bc/cw20"
	"github.com/baron-chain/cw20-bc/msg"
)

const (
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	if err := run(); err != nil {
		handleError(err)
	}
}

func run() error {
	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

var (
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow)
)

// handleError prints err to stderr and exits. NO_COLOR disables color.
func handleError(err error) {
	code := getExitCode(err)
	if code == exitRejected {
		yellow.Fprintf(os.Stderr, "Rejected: %v\n", err)
	} else {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// getExitCode separates messages that were read but rejected from
// failures to run at all.
func getExitCode(err error) int {
	var e *errorsmod.Error
	if errors.As(err, &e) {
		switch e.Codespace() {
		case msg.Codespace, cw20.Codespace:
			return exitRejected
		}
	}
	return exitFailure
}
