package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TLExpress/ssharp-includes/internal/span"
)

// windowFlags binds an optional offset/length pair to a command.
type windowFlags struct {
	offsetName string
	lengthName string
	offset     uint64
	length     uint64
}

func addWindowFlags(cmd *cobra.Command, prefix, what string) *windowFlags {
	wf := &windowFlags{offsetName: prefix + "offset", lengthName: prefix + "length"}
	cmd.Flags().Uint64Var(&wf.offset, wf.offsetName, 0, fmt.Sprintf("Start of the %s in bytes", what))
	cmd.Flags().Uint64Var(&wf.length, wf.lengthName, 0, fmt.Sprintf("Length of the %s in bytes (default: to the end)", what))
	return wf
}

// resolve returns nil when neither flag was given. A missing length runs to the
// end of an enclosing range of the given size.
func (wf *windowFlags) resolve(cmd *cobra.Command, size uint64) *span.Window {
	offSet := cmd.Flags().Changed(wf.offsetName)
	lenSet := cmd.Flags().Changed(wf.lengthName)
	if !offSet && !lenSet {
		return nil
	}
	w := span.Window{Offset: wf.offset, Length: wf.length}
	if !lenSet && wf.offset <= size {
		w.Length = size - wf.offset
	}
	return &w
}

// openWindow builds a span over path narrowed by wf.
func openWindow(cmd *cobra.Command, path string, wf *windowFlags) (span.Span, error) {
	root, err := span.FromPath(path, nil)
	if err != nil {
		return span.Span{}, err
	}
	w := wf.resolve(cmd, root.Size())
	if w == nil {
		return root, nil
	}
	return root.Sub(*w)
}
