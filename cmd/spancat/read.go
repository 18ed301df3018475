package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReadCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "read PATH",
		Short: "Write a window of a file to stdout or a file",
		Args:  usageArgs(cobra.ExactArgs(1)),
	}
	win := addWindowFlags(cmd, "", "window")
	sub := addWindowFlags(cmd, "sub-", "sub-window, relative to the window")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := openWindow(cmd, args[0], win)
		if err != nil {
			return err
		}
		data, err := s.Materialize(sub.resolve(cmd, s.Size()))
		if err != nil {
			return err
		}
		a.log.Debug("materialized", zap.Stringer("span", s), zap.Int("bytes", len(data)))
		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		a.log.Info("wrote output", zap.String("path", out), zap.Int("bytes", len(data)))
		return nil
	}
	return cmd
}
