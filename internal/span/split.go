package span

// Split cuts s into consecutive sub-spans of chunkSize bytes. The last piece
// may be shorter. An empty span yields no pieces.
func (s Span) Split(chunkSize uint64) ([]Span, error) {
	if chunkSize == 0 {
		return nil, ErrInvalidChunkSize
	}
	count := s.Size() / chunkSize
	if s.Size()%chunkSize != 0 {
		count++
	}
	pieces := make([]Span, 0, count)
	for off := uint64(0); off < s.Size(); off += chunkSize {
		n := chunkSize
		if rest := s.Size() - off; rest < n {
			n = rest
		}
		piece, err := s.Sub(Window{Offset: off, Length: n})
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, piece)
	}
	return pieces, nil
}
