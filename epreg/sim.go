package epreg

import "github.com/ardnew/fsdev/pma"

// SimRegs is a simulated endpoint control register block implementing
// [pma.Memory] with the hardware's write behavior: plain fields load,
// toggle-sensitive bits flip on write 1, completion flags clear on
// write 0, and the SETUP flag ignores software writes. Tests and
// examples use it where the silicon's register block would sit, and
// inject peripheral-side events through HardwareSet.
type SimRegs struct {
	regs [pma.EndpointCount]uint32
}

// NewSimRegs returns a register block with every endpoint disabled
// (all zero), the hardware reset state.
func NewSimRegs() *SimRegs {
	return &SimRegs{}
}

// apply merges a software write into the register, honoring each
// field's write behavior.
func (s *SimRegs) apply(i uint32, w uint32) {
	old := s.regs[i]
	var v uint32
	v |= w & (EPAddr | EPType | EPKind)                  // rw: loaded
	v |= (old ^ w) & (StatRx | StatTx | DtogRx | DtogTx) // t: flip on write 1
	v |= old & w & (CtrRx | CtrTx)                       // rc_w0: clear on write 0
	v |= old & Setup                                     // r: software writes ignored
	s.regs[i] = v
}

// Read16 reads the low halfword of register off/4.
func (s *SimRegs) Read16(off uint32) uint16 {
	return uint16(s.regs[off/4])
}

// Write16 applies a 16-bit software write to register off/4.
func (s *SimRegs) Write16(off uint32, v uint16) {
	s.apply(off/4, uint32(v))
}

// Read32 reads register off/4.
func (s *SimRegs) Read32(off uint32) uint32 {
	return s.regs[off/4]
}

// Write32 applies a 32-bit software write to register off/4.
func (s *SimRegs) Write32(off uint32, v uint32) {
	s.apply(off/4, v)
}

// HardwareSet ORs bits into endpoint ep's register the way the
// peripheral does on wire events: completion flags, the SETUP flag, or
// data toggles, bypassing the software write semantics.
func (s *SimRegs) HardwareSet(ep uint8, bits uint32) {
	s.regs[ep] |= bits
}

// Raw returns endpoint ep's register value without access semantics,
// for test assertions.
func (s *SimRegs) Raw(ep uint8) uint32 {
	return s.regs[ep]
}
