package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/TLExpress/ssharp-includes/internal/span"
	"github.com/TLExpress/ssharp-includes/internal/types"
)

func newInfoCmd(a *app) *cobra.Command {
	var (
		chunkSize uint64
		compress  string
	)
	cmd := &cobra.Command{
		Use:   "info PATH",
		Short: "Print the size and BLAKE3 digest of a window of a file",
		Args:  usageArgs(cobra.ExactArgs(1)),
	}
	win := addWindowFlags(cmd, "", "window")
	cmd.Flags().Uint64Var(&chunkSize, "chunk-size", 0, "Also digest the window in chunks of this many bytes")
	cmd.Flags().StringVar(&compress, "compress", "", "Compression the window is encoded with: none|zlib|raw|gzip|zstd")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("chunk-size") && chunkSize == 0 {
			return usageError("--chunk-size must be positive")
		}
		var tag *types.CompressType
		if cmd.Flags().Changed("compress") {
			ct, err := types.ParseCompressType(compress)
			if err != nil {
				return usageError(err.Error())
			}
			tag = &ct
		}
		s, err := openWindow(cmd, args[0], win)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "path:   %s\n", args[0])
		fmt.Fprintf(out, "window: %s\n", s.Window())
		fmt.Fprintf(out, "size:   %s (%d bytes)\n", humanize.IBytes(s.Size()), s.Size())
		if tag != nil {
			fmt.Fprintf(out, "compress: %s (%d)\n", *tag, uint8(*tag))
		}
		if err := printDigest(out, "blake3: ", s); err != nil {
			return err
		}
		if chunkSize == 0 {
			return nil
		}
		pieces, err := s.Split(chunkSize)
		if err != nil {
			return err
		}
		a.log.Debug("split window", zap.Stringer("span", s), zap.Int("chunks", len(pieces)))
		for i, p := range pieces {
			if err := printDigest(out, fmt.Sprintf("chunk %d %s: ", i, p.Window()), p); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

func printDigest(w io.Writer, label string, s span.Span) error {
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	sum := blake3.Sum256(data)
	_, err = fmt.Fprintf(w, "%s%s\n", label, hex.EncodeToString(sum[:]))
	return err
}
