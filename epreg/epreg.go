package epreg

import (
	"github.com/ardnew/fsdev/pkg"
	"github.com/ardnew/fsdev/pma"
)

// Registers is the endpoint control register codec, bound to the
// register block window and the active bus geometry. Registers sit at
// 4-byte intervals; the 16-bit geometries access the low halfword, the
// 32-bit geometry the whole word.
//
// Every operation is one register read followed by one register write,
// non-blocking, with no retries. Endpoint indices outside
// 0..pma.EndpointCount-1 are a caller contract violation and are not
// checked.
type Registers struct {
	mem pma.Memory
	g   pma.Geometry
}

// New binds the codec to a register block window under the given
// geometry.
func New(g pma.Geometry, mem pma.Memory) *Registers {
	return &Registers{mem: mem, g: g}
}

// Read returns the raw value of endpoint ep's control register.
func (r *Registers) Read(ep uint8) uint32 {
	if r.g == pma.Bus32 {
		return r.mem.Read32(uint32(ep) * 4)
	}
	return uint32(r.mem.Read16(uint32(ep) * 4))
}

// Write stores a raw value to endpoint ep's control register. Callers
// are responsible for the toggle and clear-on-write-0 semantics; the
// typed operations below are the safe interface.
func (r *Registers) Write(ep uint8, value uint32) {
	if r.g == pma.Bus32 {
		r.mem.Write32(uint32(ep)*4, value)
		return
	}
	r.mem.Write16(uint32(ep)*4, uint16(value))
}

// SetType sets the endpoint transfer type, leaving address, kind,
// statuses, and toggles untouched.
func (r *Registers) SetType(ep uint8, t Type) {
	v := r.Read(ep)
	v &= typeKeepMask
	v |= uint32(t)
	v |= CtrRx | CtrTx // writing 0 would clear a pending flag
	r.Write(ep, v)
	pkg.LogDebug(pkg.ComponentEPReg, "endpoint type set", "ep", ep, "type", t.String())
}

// Type returns the endpoint transfer type.
func (r *Registers) Type(ep uint8) Type {
	return Type(r.Read(ep) & EPType)
}

// SetAddress sets the endpoint address field.
func (r *Registers) SetAddress(ep uint8, addr uint8) {
	v := r.Read(ep)
	v &= addrKeepMask
	v |= uint32(addr) & EPAddr
	v |= CtrRx | CtrTx
	r.Write(ep, v)
}

// Address returns the endpoint address field.
func (r *Registers) Address(ep uint8) uint8 {
	return uint8(r.Read(ep) & EPAddr)
}

// SetTxStatus drives the transmission status field to the target
// state. The field is toggle-on-write-1, so the write carries the XOR
// of the current and target values; the reception status and both data
// toggles are masked to a zero delta and stay put.
func (r *Registers) SetTxStatus(ep uint8, s Status) {
	v := r.Read(ep)
	v &= txDtogMask
	v ^= uint32(s) << statTxShift
	v |= CtrRx | CtrTx
	r.Write(ep, v)
}

// SetRxStatus drives the reception status field to the target state.
// Same XOR discipline as SetTxStatus with the directions swapped.
func (r *Registers) SetRxStatus(ep uint8, s Status) {
	v := r.Read(ep)
	v &= rxDtogMask
	v ^= uint32(s) << statRxShift
	v |= CtrRx | CtrTx
	r.Write(ep, v)
}

// TxStatus decodes the transmission status field.
func (r *Registers) TxStatus(ep uint8) Status {
	return Status((r.Read(ep) & StatTx) >> statTxShift)
}

// RxStatus decodes the reception status field.
func (r *Registers) RxStatus(ep uint8) Status {
	return Status((r.Read(ep) & StatRx) >> statRxShift)
}

// ClearTxComplete clears the transmission completion flag. The
// reception flag is explicitly re-asserted: it clears on write 0, and
// losing it here would drop a pending wire event on the other
// direction.
func (r *Registers) ClearTxComplete(ep uint8) {
	v := r.Read(ep)
	v &= regMask
	v &^= CtrTx
	v |= CtrRx
	r.Write(ep, v)
}

// ClearRxComplete clears the reception completion flag, re-asserting
// the transmission flag.
func (r *Registers) ClearRxComplete(ep uint8) {
	v := r.Read(ep)
	v &= regMask
	v &^= CtrRx
	v |= CtrTx
	r.Write(ep, v)
}

// TxComplete reports whether the transmission completion flag is set.
func (r *Registers) TxComplete(ep uint8) bool {
	return r.Read(ep)&CtrTx != 0
}

// RxComplete reports whether the reception completion flag is set.
func (r *Registers) RxComplete(ep uint8) bool {
	return r.Read(ep)&CtrRx != 0
}

// ToggleTxDtog flips the transmission data toggle.
func (r *Registers) ToggleTxDtog(ep uint8) {
	v := r.Read(ep)
	v &= regMask
	v |= CtrRx | CtrTx | DtogTx
	r.Write(ep, v)
}

// ToggleRxDtog flips the reception data toggle.
func (r *Registers) ToggleRxDtog(ep uint8) {
	v := r.Read(ep)
	v &= regMask
	v |= CtrRx | CtrTx | DtogRx
	r.Write(ep, v)
}

// ClearTxDtog forces the transmission data toggle to DATA0. The bit is
// toggle-on-write-1, so this is a conditional toggle: it flips only if
// the bit is currently set.
func (r *Registers) ClearTxDtog(ep uint8) {
	if r.Read(ep)&DtogTx != 0 {
		r.ToggleTxDtog(ep)
	}
}

// ClearRxDtog forces the reception data toggle to DATA0.
func (r *Registers) ClearRxDtog(ep uint8) {
	if r.Read(ep)&DtogRx != 0 {
		r.ToggleRxDtog(ep)
	}
}

// TxDtog reports the transmission data toggle state.
func (r *Registers) TxDtog(ep uint8) bool {
	return r.Read(ep)&DtogTx != 0
}

// RxDtog reports the reception data toggle state.
func (r *Registers) RxDtog(ep uint8) bool {
	return r.Read(ep)&DtogRx != 0
}

// SetKind sets the endpoint kind bit (double-buffer for bulk, status-
// out for control).
func (r *Registers) SetKind(ep uint8) {
	v := r.Read(ep)
	v |= EPKind
	v &= regMask
	v |= CtrRx | CtrTx
	r.Write(ep, v)
}

// ClearKind clears the endpoint kind bit.
func (r *Registers) ClearKind(ep uint8) {
	v := r.Read(ep)
	v &= kindKeepMask
	v |= CtrRx | CtrTx
	r.Write(ep, v)
}

// Kind reports the endpoint kind bit.
func (r *Registers) Kind(ep uint8) bool {
	return r.Read(ep)&EPKind != 0
}

// SetupComplete reports the SETUP flag: the last completed reception
// was a SETUP transaction. The bit is read-only in hardware.
func (r *Registers) SetupComplete(ep uint8) bool {
	return r.Read(ep)&Setup != 0
}
