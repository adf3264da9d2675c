package pma

import "encoding/binary"

// Memory is a width-explicit window onto device memory, addressed by
// byte offset. Every call is a single fresh access of the stated width:
// implementations must not merge, split, or cache accesses, because the
// peripheral reads and writes the same region asynchronously.
//
// Offsets are a caller contract; out-of-window offsets are not checked.
type Memory interface {
	Read16(off uint32) uint16
	Write16(off uint32, v uint16)
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}

// SimBlock is an in-process Memory backed by an ordinary byte slice,
// little-endian like the hardware. It stands in for the register block
// and packet memory in tests and examples; tests drive the
// peripheral-side mutations (completion flags, received counts) by
// writing through the same interface.
type SimBlock struct {
	b []byte
}

// NewSimBlock returns a zeroed simulated block of the given size.
func NewSimBlock(size int) *SimBlock {
	return &SimBlock{b: make([]byte, size)}
}

// Read16 reads the halfword at byte offset off.
func (s *SimBlock) Read16(off uint32) uint16 {
	return binary.LittleEndian.Uint16(s.b[off:])
}

// Write16 writes the halfword at byte offset off.
func (s *SimBlock) Write16(off uint32, v uint16) {
	binary.LittleEndian.PutUint16(s.b[off:], v)
}

// Read32 reads the word at byte offset off.
func (s *SimBlock) Read32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(s.b[off:])
}

// Write32 writes the word at byte offset off.
func (s *SimBlock) Write32(off uint32, v uint32) {
	binary.LittleEndian.PutUint32(s.b[off:], v)
}

// Size returns the block size in bytes.
func (s *SimBlock) Size() int {
	return len(s.b)
}

// Bytes exposes the backing store for test inspection.
func (s *SimBlock) Bytes() []byte {
	return s.b
}
