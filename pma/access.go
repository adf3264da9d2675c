package pma

import (
	"github.com/ardnew/fsdev/pkg"
)

// Access is the bus-width strategy: a uniform word-at-index view of the
// PMA with the buffer table base baked in. One implementation exists
// per geometry; Select picks it once at configuration time.
//
// For the 16-bit geometries a word is a halfword and indices count
// halfwords from the start of the PMA. For Bus32 a word is 32 bits wide
// and indices count words; a descriptor's address and count live in the
// same word (addr | count<<16) and are never accessed separately.
//
// Endpoint indices outside 0..EndpointCount-1 are a caller contract
// violation and are not checked.
type Access interface {
	// Geometry reports the active access geometry.
	Geometry() Geometry

	// ReadWord reads the word at the logical index.
	ReadWord(index uint32) uint32

	// WriteWord writes the word at the logical index.
	WriteWord(index uint32, value uint32)

	// DescriptorSlot returns the logical word index of the descriptor
	// for (ep, dir). In the 16-bit geometries this is the address
	// halfword; the count halfword follows at DescriptorSlot+1. In the
	// Bus32 geometry it is the single packed descriptor word.
	DescriptorSlot(ep uint8, dir Dir) uint32
}

// Select validates the configuration and returns the Access strategy
// for its geometry, bound to the given memory window.
func Select(cfg Config, mem Memory) (Access, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := cfg.Geometry()
	pkg.LogInfo(pkg.ComponentPMA, "access geometry selected",
		"geometry", g.String(), "pma_size", cfg.PMASize,
		"btable_base", cfg.BTableBase, "table_bytes", cfg.TableBytes())
	switch g {
	case Bus16Paired:
		return &paired16{mem: mem, base: cfg.BTableBase}, nil
	case Bus32:
		return &direct32{mem: mem, base: cfg.BTableBase}, nil
	default:
		return &strided16{mem: mem, base: cfg.BTableBase}, nil
	}
}

// paired16 places each 16-bit datum in its own 32-bit-aligned slot:
// halfword index i lives at byte offset i*4.
type paired16 struct {
	mem  Memory
	base uint16
}

func (a *paired16) Geometry() Geometry { return Bus16Paired }

func (a *paired16) ReadWord(index uint32) uint32 {
	return uint32(a.mem.Read16(index * 4))
}

func (a *paired16) WriteWord(index uint32, value uint32) {
	a.mem.Write16(index*4, uint16(value))
}

func (a *paired16) DescriptorSlot(ep uint8, dir Dir) uint32 {
	return btableHalfword(a.base, ep, dir)
}

// strided16 packs 16-bit data densely: halfword index i lives at byte
// offset i*2.
type strided16 struct {
	mem  Memory
	base uint16
}

func (a *strided16) Geometry() Geometry { return Bus16Strided }

func (a *strided16) ReadWord(index uint32) uint32 {
	return uint32(a.mem.Read16(index * 2))
}

func (a *strided16) WriteWord(index uint32, value uint32) {
	a.mem.Write16(index*2, uint16(value))
}

func (a *strided16) DescriptorSlot(ep uint8, dir Dir) uint32 {
	return btableHalfword(a.base, ep, dir)
}

// direct32 accesses the PMA strictly as 32-bit words: word index i
// lives at byte offset i*4 and is read or written in one access.
type direct32 struct {
	mem  Memory
	base uint16
}

func (a *direct32) Geometry() Geometry { return Bus32 }

func (a *direct32) ReadWord(index uint32) uint32 {
	return a.mem.Read32(index * 4)
}

func (a *direct32) WriteWord(index uint32, value uint32) {
	a.mem.Write32(index*4, value)
}

func (a *direct32) DescriptorSlot(ep uint8, dir Dir) uint32 {
	// One packed word per descriptor, two per endpoint. The base is
	// 8-byte aligned, so the shift is exact.
	return uint32(a.base)>>2 + uint32(ep)*2 + uint32(dir)
}

// btableHalfword returns the halfword index of the (ep, dir) address
// entry for the 16-bit table layouts: four halfwords per endpoint, the
// tx pair before the rx pair.
func btableHalfword(base uint16, ep uint8, dir Dir) uint32 {
	return uint32(base)>>1 + uint32(ep)*4 + uint32(dir)*2
}
