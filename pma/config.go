package pma

import (
	"fmt"

	"github.com/ardnew/fsdev/pkg"
)

// EndpointCount is the number of endpoint register/descriptor pairs
// provided by this peripheral family.
const EndpointCount = 8

// descriptorBytes is the PMA footprint of one endpoint's tx/rx
// descriptor pair: two slots of (addr:16, count:16).
const descriptorBytes = 8

// Geometry identifies the physical access scheme for the PMA.
type Geometry uint8

// PMA access geometries.
const (
	Bus16Paired  Geometry = iota // 16-bit data on 32-bit-aligned slots (512-byte PMA)
	Bus16Strided                 // 16-bit data densely packed (1024-byte PMA)
	Bus32                        // 32-bit access only (2048-byte PMA)
)

// String returns a human-readable geometry name.
func (g Geometry) String() string {
	switch g {
	case Bus16Paired:
		return "16-bit paired"
	case Bus16Strided:
		return "16-bit strided"
	case Bus32:
		return "32-bit direct"
	default:
		return "unknown"
	}
}

// Stride returns the addressing stride factor for the geometry: the
// number of halfword slots consumed per logical halfword of PMA.
func (g Geometry) Stride() uint32 {
	if g == Bus16Paired {
		return 2
	}
	return 1
}

// Dir selects the transmit or receive half of an endpoint's descriptor
// pair.
type Dir uint8

// Descriptor directions. The tx descriptor is slot 0 of each pair, rx
// is slot 1, matching the hardware table layout.
const (
	DirTx Dir = 0
	DirRx Dir = 1
)

// String returns "tx" or "rx".
func (d Dir) String() string {
	if d == DirRx {
		return "rx"
	}
	return "tx"
}

// Config is the build-time configuration surface of the peripheral:
// PMA capacity, buffer table placement, and bus-width selection. It is
// validated once, before any hardware access; the hot paths perform no
// further checking.
type Config struct {
	// PMASize is the packet memory capacity in bytes: 512, 1024, or 2048.
	PMASize uint16

	// BTableBase is the byte offset of the buffer descriptor table
	// within the PMA. Must be a multiple of 8. A non-zero base leaves
	// room below the table for peripherals (such as CAN) that share
	// the memory.
	BTableBase uint16

	// Bus32 selects the 32-bit direct access scheme. Only valid with a
	// 2048-byte PMA.
	Bus32 bool
}

// Validate checks the configuration against the hardware constraints.
// A failure here is a configuration defect: nothing downstream guards
// against an invalid Config.
func (c Config) Validate() error {
	switch c.PMASize {
	case 512, 1024:
		if c.Bus32 {
			return fmt.Errorf("pma size %d with 32-bit bus: %w", c.PMASize, pkg.ErrBusWidth)
		}
	case 2048:
		if !c.Bus32 {
			// Mirrors the hardware header's build warning: a 2048-byte
			// PMA device normally requires the 32-bit scheme.
			pkg.LogWarn(pkg.ComponentPMA, "2048-byte PMA without 32-bit bus selector",
				"pma_size", c.PMASize)
		}
	default:
		return fmt.Errorf("pma size %d: %w", c.PMASize, pkg.ErrPMASize)
	}
	if c.BTableBase%8 != 0 {
		return fmt.Errorf("btable base 0x%03X: %w", c.BTableBase, pkg.ErrBTableAlign)
	}
	if uint32(c.BTableBase)+EndpointCount*descriptorBytes > uint32(c.PMASize) {
		return fmt.Errorf("btable base 0x%03X + %d descriptors: %w",
			c.BTableBase, EndpointCount, pkg.ErrBTableOverflow)
	}
	return nil
}

// Geometry returns the access geometry implied by the configuration.
func (c Config) Geometry() Geometry {
	switch {
	case c.PMASize == 512:
		return Bus16Paired
	case c.Bus32:
		return Bus32
	default:
		return Bus16Strided
	}
}

// TableBytes returns the address-space footprint of the buffer
// descriptor table: EndpointCount * 8 * stride bytes. For the paired
// geometry this is twice the table's PMA byte count, because each
// halfword occupies a full 32-bit slot.
func (c Config) TableBytes() uint32 {
	return EndpointCount * descriptorBytes * c.Geometry().Stride()
}

// WindowBytes returns the address-space footprint of the whole PMA,
// which is the minimum size of the Memory window backing it.
func (c Config) WindowBytes() uint32 {
	return uint32(c.PMASize) * c.Geometry().Stride()
}
