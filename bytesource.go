package binstream

import (
	"golang.org/x/exp/mmap"
)

// ByteSource is a finite, seekable, read-only byte view backing a BitCursor.
// length, position, seek, read_bytes, read_bytes_full and eof are the only
// operations a generated parser's cursor ever needs from the underlying
// storage.
type ByteSource interface {
	// Length returns the total byte count. Constant-time.
	Length() uint64
	// Position returns the current cursor offset in bytes.
	Position() uint64
	// Seek sets the cursor. pos == Length() is legal and means EOF.
	Seek(pos uint64) error
	// ReadBytes advances by n and returns the bytes read.
	ReadBytes(n uint64) ([]byte, error)
	// ReadBytesFull reads from the current position to the end.
	ReadBytesFull() ([]byte, error)
	// EOF reports whether Position() == Length().
	EOF() bool
}

// MemorySource is a ByteSource backed entirely by an in-memory buffer — the
// simplest correct implementation, and the one every generated parser uses
// when it has already loaded its input.
type MemorySource struct {
	buf []byte
	pos uint64
}

// NewMemorySource wraps buf for reading. buf is not copied; callers must not
// mutate it while a source (or a cursor over it) is in use.
func NewMemorySource(buf []byte) *MemorySource {
	return &MemorySource{buf: buf}
}

func (s *MemorySource) Length() uint64   { return uint64(len(s.buf)) }
func (s *MemorySource) Position() uint64 { return s.pos }
func (s *MemorySource) EOF() bool        { return s.pos == uint64(len(s.buf)) }

func (s *MemorySource) Seek(pos uint64) error {
	if pos > uint64(len(s.buf)) {
		return newErr(KindOutOfBounds, "seek to %d exceeds length %d", pos, len(s.buf))
	}
	s.pos = pos
	return nil
}

func (s *MemorySource) ReadBytes(n uint64) ([]byte, error) {
	avail := uint64(len(s.buf)) - s.pos
	if n > avail {
		return nil, newErr(KindUnexpectedEOF, "read %d bytes at pos %d: only %d available", n, s.pos, avail)
	}
	out := s.buf[s.pos : s.pos+n]
	s.pos += n
	return out, nil
}

func (s *MemorySource) ReadBytesFull() ([]byte, error) {
	out := s.buf[s.pos:]
	s.pos = uint64(len(s.buf))
	return out, nil
}

// MappedSource is a ByteSource backed by a memory-mapped file, for inputs
// too large to comfortably hold as a single []byte. Backward seeks are free
// since the whole mapping is addressable by offset; ReadBytes copies out of
// the mapping so returned slices stay valid across later seeks. The read
// position is held by the MappedSource itself, so cursors sharing one
// MappedSource also share its position.
type MappedSource struct {
	r   *mmap.ReaderAt
	pos uint64
}

// NewMappedSource opens path as a memory-mapped ByteSource.
func NewMappedSource(path string) (*MappedSource, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, wrapErr(KindOutOfBounds, err, "mmap open %q", path)
	}
	return &MappedSource{r: r}, nil
}

// Close releases the underlying mapping. Safe to call once all cursors over
// this source are done.
func (s *MappedSource) Close() error { return s.r.Close() }

func (s *MappedSource) Length() uint64   { return uint64(s.r.Len()) }
func (s *MappedSource) Position() uint64 { return s.pos }
func (s *MappedSource) EOF() bool        { return s.pos == uint64(s.r.Len()) }

func (s *MappedSource) Seek(pos uint64) error {
	if pos > uint64(s.r.Len()) {
		return newErr(KindOutOfBounds, "seek to %d exceeds length %d", pos, s.r.Len())
	}
	s.pos = pos
	return nil
}

func (s *MappedSource) ReadBytes(n uint64) ([]byte, error) {
	avail := uint64(s.r.Len()) - s.pos
	if n > avail {
		return nil, newErr(KindUnexpectedEOF, "read %d bytes at pos %d: only %d available", n, s.pos, avail)
	}
	out := make([]byte, n)
	if _, err := s.r.ReadAt(out, int64(s.pos)); err != nil {
		return nil, wrapErr(KindUnexpectedEOF, err, "mmap read at %d", s.pos)
	}
	s.pos += n
	return out, nil
}

func (s *MappedSource) ReadBytesFull() ([]byte, error) {
	n := uint64(s.r.Len()) - s.pos
	out, err := s.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return out, nil
}
