package btable

import "fmt"

// Receive buffers are allocated in hardware blocks of 2 or 32 bytes,
// selected by the BLSIZE flag of the rx count field.
const (
	blockUnitSmall = 2  // BLSIZE = 0
	blockUnitLarge = 32 // BLSIZE = 1

	// smallUnitMax is the largest capacity expressible in 2-byte
	// blocks (31 blocks); anything larger uses 32-byte blocks.
	smallUnitMax = 62
)

// BlockEncoding is the hardware representation of a receive buffer's
// allocated capacity: a block unit and a block count.
type BlockEncoding struct {
	// BlockSize is the block unit in bytes: 2 or 32.
	BlockSize uint16

	// NumBlocks is the number of blocks allocated.
	NumBlocks uint16

	// Allocated is NumBlocks * BlockSize: the true buffer capacity,
	// always at least the requested size.
	Allocated uint16
}

// AlignedBufferSize rounds size up to the next capacity representable
// by the hardware's block encoding.
func AlignedBufferSize(size uint16) uint16 {
	var unit uint16 = blockUnitSmall
	if size > smallUnitMax {
		unit = blockUnitLarge
	}
	numblocks := (size + unit - 1) / unit
	return numblocks * unit
}

// ComputeBlockEncoding converts a requested byte count into the block
// encoding the rx descriptor format requires. The allocated capacity is
// the requested size rounded up to the block unit; callers use it as
// the buffer's true size when reserving PMA space.
//
// The encoding tops out at 32 blocks of 32 bytes; requested sizes
// above 1024 are a caller contract violation. USB full speed needs at
// most 64 bytes for control/bulk/interrupt and 1023 for isochronous.
func ComputeBlockEncoding(requested uint16) BlockEncoding {
	aligned := AlignedBufferSize(requested)

	var unit uint16 = blockUnitSmall
	if aligned > smallUnitMax {
		unit = blockUnitLarge
	}
	numblocks := aligned / unit

	// The rounded size must reconstruct exactly from the encoding. A
	// mismatch is a defect in the encoder itself, never a caller input
	// problem, and a silently wrong capacity corrupts transfers on
	// hardware.
	if aligned-numblocks*unit != 0 {
		panic(fmt.Sprintf("btable: block encoding mismatch: %d bytes != %d blocks of %d",
			aligned, numblocks, unit))
	}

	return BlockEncoding{BlockSize: unit, NumBlocks: numblocks, Allocated: aligned}
}

// flag returns the BLSIZE field value: 0 for 2-byte blocks, 1 for
// 32-byte blocks.
func (e BlockEncoding) flag() uint16 {
	if e.BlockSize == blockUnitLarge {
		return 1
	}
	return 0
}

// Field returns the encoding packed for the 16-bit rx count field:
// BLSIZE in bit 15, the block count in bits 14:10. When BLSIZE is set
// the hardware stores NumBlocks-1; 2-byte blocks store NumBlocks
// unmodified.
func (e BlockEncoding) Field() uint16 {
	f := e.flag()
	return f<<15 | (e.NumBlocks-f)<<10
}
