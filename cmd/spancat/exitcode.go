package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/TLExpress/ssharp-includes/internal/span"
)

const (
	exitIO    = 1
	exitUsage = 2
)

type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string {
	return e.msg
}

func (e *exitCodeError) ExitCode() int {
	return e.code
}

func usageError(msg string) error {
	return &exitCodeError{code: exitUsage, msg: msg}
}

// usageArgs turns positional argument failures into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err.Error())
		}
		return nil
	}
}

func exitCode(err error) int {
	var coded *exitCodeError
	switch {
	case errors.As(err, &coded):
		return coded.ExitCode()
	case errors.Is(err, span.ErrOutOfRange):
		return exitUsage
	default:
		return exitIO
	}
}
