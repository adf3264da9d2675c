package pma

import "testing"

func TestSimBlockWidths(t *testing.T) {
	s := NewSimBlock(64)

	s.Write16(0, 0xBEEF)
	if got := s.Read16(0); got != 0xBEEF {
		t.Errorf("Read16(0) = 0x%04X, want 0xBEEF", got)
	}

	s.Write32(4, 0x01234567)
	if got := s.Read32(4); got != 0x01234567 {
		t.Errorf("Read32(4) = 0x%08X, want 0x01234567", got)
	}

	// Halfword views of a word follow the hardware's little-endian bus.
	if got := s.Read16(4); got != 0x4567 {
		t.Errorf("Read16(4) = 0x%04X, want 0x4567", got)
	}
	if got := s.Read16(6); got != 0x0123 {
		t.Errorf("Read16(6) = 0x%04X, want 0x0123", got)
	}
}

func TestSimBlockZeroed(t *testing.T) {
	s := NewSimBlock(32)
	if s.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", s.Size())
	}
	for off := uint32(0); off < 32; off += 2 {
		if got := s.Read16(off); got != 0 {
			t.Errorf("Read16(%d) = 0x%04X, want 0", off, got)
		}
	}
}

func TestSimBlockBytes(t *testing.T) {
	s := NewSimBlock(8)
	s.Write16(2, 0xA55A)
	b := s.Bytes()
	if b[2] != 0x5A || b[3] != 0xA5 {
		t.Errorf("Bytes()[2:4] = %02X %02X, want 5A A5", b[2], b[3])
	}
}
