package span

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzBufferSpan(f *testing.F) {
	f.Add(digits(), uint64(2), uint64(5), uint64(1), uint64(2))
	f.Add(digits(), uint64(2), uint64(5), uint64(4), uint64(2))
	f.Add([]byte{}, uint64(0), uint64(0), uint64(0), uint64(0))
	f.Fuzz(func(t *testing.T, data []byte, off, length, subOff, subLen uint64) {
		s, err := FromBuffer(data, &Window{Offset: off, Length: length})
		fits := off <= uint64(len(data)) && length <= uint64(len(data))-off
		if !fits {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("FromBuffer(%d,%d) over %d bytes: err=%v", off, length, len(data), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("FromBuffer: %v", err)
		}
		got, err := s.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}
		if !bytes.Equal(got, data[off:off+length]) {
			t.Fatalf("Bytes mismatch for (%d,%d)", off, length)
		}

		child, err := s.Sub(Window{Offset: subOff, Length: subLen})
		if subOff > length || subLen > length-subOff {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Sub(%d,%d) of %d: err=%v", subOff, subLen, length, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		got, err = child.Bytes()
		if err != nil {
			t.Fatalf("child Bytes: %v", err)
		}
		start := off + subOff
		if !bytes.Equal(got, data[start:start+subLen]) {
			t.Fatalf("child mismatch for (%d,%d)+(%d,%d)", off, length, subOff, subLen)
		}
		if child.Size() != subLen {
			t.Fatalf("child Size=%d want %d", child.Size(), subLen)
		}
	})
}
