package span

import "fmt"

// Window is an (offset, length) range relative to the start of a source's
// logical extent.
type Window struct {
	Offset uint64
	Length uint64
}

// Whole returns the window covering an entire extent.
func Whole(extent uint64) Window {
	return Window{Offset: 0, Length: extent}
}

// At is shorthand for a Window literal, handy for optional window arguments.
func At(offset, length uint64) *Window {
	return &Window{Offset: offset, Length: length}
}

// End returns Offset+Length. The result wraps if the window itself overflows;
// use Fits for bounds checks.
func (w Window) End() uint64 {
	return w.Offset + w.Length
}

// Fits reports whether the window lies inside [0, extent], i.e. End() <= extent.
func (w Window) Fits(extent uint64) bool {
	return w.Offset <= extent && w.Length <= extent-w.Offset
}

// compose maps a window expressed relative to w onto w's own frame.
// The caller must have checked rel.Fits(w.Length).
func (w Window) compose(rel Window) Window {
	return Window{Offset: w.Offset + rel.Offset, Length: rel.Length}
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,+%d)", w.Offset, w.Length)
}
