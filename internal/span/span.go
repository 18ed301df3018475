package span

import "fmt"

// Span is a validated, immutable view of a window of a Source.
//
// The window always fits the source's extent as observed when the root span
// was built. A file may still shrink afterwards; Materialize reports that as
// an IOError.
type Span struct {
	source Source
	window Window
}

// FromBuffer builds a span over a copy of b. A nil window covers all of b.
func FromBuffer(b []byte, w *Window) (Span, error) {
	buf := NewBuffer(b)
	win := Whole(buf.Len())
	if w != nil {
		win = *w
	}
	if !win.Fits(buf.Len()) {
		return Span{}, outOfRange(win, buf.Len())
	}
	return Span{source: buf, window: win}, nil
}

// FromPath builds a span over the file at path. The file size is probed once,
// here; a missing or unreadable file fails now rather than at Materialize. A
// nil window covers the whole file.
func FromPath(path string, w *Window) (Span, error) {
	size, err := probeSize(path)
	if err != nil {
		return Span{}, err
	}
	win := Whole(size)
	if w != nil {
		win = *w
	}
	if !win.Fits(size) {
		return Span{}, outOfRange(win, size)
	}
	return Span{source: File{Path: path}, window: win}, nil
}

// Sub derives a span for w, expressed relative to the start of s. No bytes
// are read or copied: buffer-backed children share the parent's immutable
// buffer and file-backed children carry the same path.
func (s Span) Sub(w Window) (Span, error) {
	abs, err := s.resolve(&w)
	if err != nil {
		return Span{}, err
	}
	switch s.source.(type) {
	case Buffer, File:
		return Span{source: s.source, window: abs}, nil
	default:
		return Span{}, ErrInvalidSource
	}
}

// Materialize returns an owned copy of the bytes in w, relative to the start
// of s. A nil window materializes the whole span.
func (s Span) Materialize(w *Window) ([]byte, error) {
	abs, err := s.resolve(w)
	if err != nil {
		return nil, err
	}
	switch src := s.source.(type) {
	case Buffer:
		out := make([]byte, abs.Length)
		copy(out, src.data[abs.Offset:abs.End()])
		return out, nil
	case File:
		return readRange(src.Path, abs)
	default:
		return nil, ErrInvalidSource
	}
}

// Bytes materializes the whole span.
func (s Span) Bytes() ([]byte, error) {
	return s.Materialize(nil)
}

// Size returns the length of the span's window. It never performs I/O.
func (s Span) Size() uint64 {
	return s.window.Length
}

// Window returns the span's window in the coordinates of its source.
func (s Span) Window() Window {
	return s.window
}

// Source returns the backing source.
func (s Span) Source() Source {
	return s.source
}

// IsInMemory reports whether the span is backed by a Buffer.
func (s Span) IsInMemory() bool {
	_, ok := s.source.(Buffer)
	return ok
}

func (s Span) String() string {
	switch src := s.source.(type) {
	case Buffer:
		return fmt.Sprintf("buffer(%d)%s", src.Len(), s.window)
	case File:
		return fmt.Sprintf("file(%s)%s", src.Path, s.window)
	default:
		return "span(invalid)"
	}
}

// resolve turns an optional window relative to s into an absolute window.
func (s Span) resolve(rel *Window) (Window, error) {
	if rel == nil {
		return s.window, nil
	}
	if !rel.Fits(s.window.Length) {
		return Window{}, outOfRange(*rel, s.window.Length)
	}
	return s.window.compose(*rel), nil
}
