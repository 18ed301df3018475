package span

import (
	"errors"
	"io"
	"os"
)

var errNotRegular = errors.New("not a regular file")

// Source is the storage behind a Span. It has exactly two implementations,
// Buffer and File.
type Source interface {
	isSource()
}

// Buffer is an owned, never mutated in-memory byte buffer.
type Buffer struct {
	data []byte
}

// NewBuffer copies b into a new Buffer.
func NewBuffer(b []byte) Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return Buffer{data: data}
}

// Len returns the buffer length.
func (b Buffer) Len() uint64 {
	return uint64(len(b.data))
}

func (Buffer) isSource() {}

// File names a file on disk. It never holds the file open.
type File struct {
	Path string
}

func (File) isSource() {}

// probeSize opens the regular file at path and returns its size. The file is
// closed before returning.
func probeSize(path string) (uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()
	info, err := file.Stat()
	if err != nil {
		return 0, &IOError{Op: "stat", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return 0, &IOError{Op: "stat", Path: path, Err: errNotRegular}
	}
	return uint64(info.Size()), nil
}

type readAtCloser interface {
	io.ReaderAt
	io.Closer
}

// readRange reads exactly w.Length bytes starting at w.Offset of the file at
// path.
func readRange(path string, w Window) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return readExact(file, path, w)
}

// readExact reads w from r and closes r on every path. A short read is an
// error.
func readExact(r readAtCloser, path string, w Window) (data []byte, err error) {
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			data, err = nil, &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()
	buf := make([]byte, w.Length)
	n, err := r.ReadAt(buf, int64(w.Offset))
	if err != nil && err != io.EOF {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if uint64(n) != w.Length {
		return nil, &IOError{Op: "read", Path: path, Err: io.ErrUnexpectedEOF}
	}
	return buf, nil
}
