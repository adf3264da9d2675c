package btable

import (
	"github.com/ardnew/fsdev/pkg"
	"github.com/ardnew/fsdev/pma"
)

// countMask selects the significant byte-count bits of a descriptor
// count field. The upper bits of an rx count pack the block-size
// allocation and are written separately.
const countMask = 0x3FF

// Table is the per-endpoint buffer descriptor table, addressed through
// the configured bus-width strategy. Endpoint indices outside
// 0..pma.EndpointCount-1 are a caller contract violation and are not
// checked.
type Table struct {
	acc pma.Access
}

// New binds a table model to an access strategy.
func New(acc pma.Access) *Table {
	return &Table{acc: acc}
}

// Address returns the PMA byte address of the (ep, dir) buffer.
func (t *Table) Address(ep uint8, dir pma.Dir) uint16 {
	// The address is the low half of the slot in every geometry: the
	// whole halfword, or bits 15:0 of the packed 32-bit word.
	return uint16(t.acc.ReadWord(t.acc.DescriptorSlot(ep, dir)))
}

// SetAddress sets the PMA byte address of the (ep, dir) buffer. In the
// 32-bit geometry the low two bits are forced to zero (buffers are
// word aligned) and the count half of the packed word is preserved.
func (t *Table) SetAddress(ep uint8, dir pma.Dir, addr uint16) {
	slot := t.acc.DescriptorSlot(ep, dir)
	if t.acc.Geometry() == pma.Bus32 {
		w := t.acc.ReadWord(slot)
		t.acc.WriteWord(slot, w&0xFFFF0000|uint32(addr&0xFFFC))
		return
	}
	t.acc.WriteWord(slot, uint32(addr))
}

// Count returns the byte count of the (ep, dir) descriptor, masked to
// its 10 significant bits. For an rx descriptor this is the number of
// bytes the peripheral actually received.
func (t *Table) Count(ep uint8, dir pma.Dir) uint16 {
	slot := t.acc.DescriptorSlot(ep, dir)
	if t.acc.Geometry() == pma.Bus32 {
		return uint16(t.acc.ReadWord(slot)>>16) & countMask
	}
	return uint16(t.acc.ReadWord(slot+1)) & countMask
}

// SetCount sets the byte count of the (ep, dir) descriptor. A tx count
// owns its whole field and is written outright; an rx count is merged
// into the field so the packed block-size/num-blocks bits survive.
func (t *Table) SetCount(ep uint8, dir pma.Dir, count uint16) {
	if dir == pma.DirRx {
		t.mergeCount(ep, dir, count)
		return
	}
	slot := t.acc.DescriptorSlot(ep, dir)
	if t.acc.Geometry() == pma.Bus32 {
		w := t.acc.ReadWord(slot)
		t.acc.WriteWord(slot, w&0x0000FFFF|uint32(count&countMask)<<16)
		return
	}
	t.acc.WriteWord(slot+1, uint32(count&countMask))
}

// mergeCount read-modify-writes the low 10 bits of a count field,
// preserving the rest.
func (t *Table) mergeCount(ep uint8, dir pma.Dir, count uint16) {
	slot := t.acc.DescriptorSlot(ep, dir)
	if t.acc.Geometry() == pma.Bus32 {
		w := t.acc.ReadWord(slot)
		t.acc.WriteWord(slot, w&^uint32(countMask<<16)|uint32(count&countMask)<<16)
		return
	}
	w := t.acc.ReadWord(slot + 1)
	t.acc.WriteWord(slot+1, w&^uint32(countMask)|uint32(count&countMask))
}

// SetRxBufferSize sizes the (ep, dir) receive buffer: the requested
// byte count is rounded to the hardware block granularity and the
// block encoding is stored in the descriptor's count field, replacing
// any previous encoding and zeroing the received count. It returns the
// allocated capacity, which the caller uses when reserving PMA space.
//
// dir is pma.DirRx for a single-buffered endpoint; for a double-
// buffered endpoint both descriptors of the pair hold rx encodings.
func (t *Table) SetRxBufferSize(ep uint8, dir pma.Dir, requested uint16) uint16 {
	enc := ComputeBlockEncoding(requested)
	slot := t.acc.DescriptorSlot(ep, dir)
	if t.acc.Geometry() == pma.Bus32 {
		w := t.acc.ReadWord(slot)
		t.acc.WriteWord(slot, w&0x0000FFFF|uint32(enc.Field())<<16)
	} else {
		t.acc.WriteWord(slot+1, uint32(enc.Field()))
	}
	pkg.LogDebug(pkg.ComponentBTable, "rx buffer sized",
		"ep", ep, "dir", dir.String(),
		"requested", requested, "allocated", enc.Allocated,
		"block_size", enc.BlockSize, "num_blocks", enc.NumBlocks)
	return enc.Allocated
}

// Double-buffered endpoints repurpose the descriptor pair as buffer 0
// and buffer 1 of a single direction: dbuf0 is the tx slot, dbuf1 the
// rx slot.

// Dbuf0Address returns the PMA address of double buffer 0.
func (t *Table) Dbuf0Address(ep uint8) uint16 {
	return t.Address(ep, pma.DirTx)
}

// Dbuf1Address returns the PMA address of double buffer 1.
func (t *Table) Dbuf1Address(ep uint8) uint16 {
	return t.Address(ep, pma.DirRx)
}

// SetDbuf0Address sets the PMA address of double buffer 0.
func (t *Table) SetDbuf0Address(ep uint8, addr uint16) {
	t.SetAddress(ep, pma.DirTx, addr)
}

// SetDbuf1Address sets the PMA address of double buffer 1.
func (t *Table) SetDbuf1Address(ep uint8, addr uint16) {
	t.SetAddress(ep, pma.DirRx, addr)
}

// Dbuf0Count returns the byte count of double buffer 0.
func (t *Table) Dbuf0Count(ep uint8) uint16 {
	return t.Count(ep, pma.DirTx)
}

// Dbuf1Count returns the byte count of double buffer 1.
func (t *Table) Dbuf1Count(ep uint8) uint16 {
	return t.Count(ep, pma.DirRx)
}

// SetTxDbuf0Count sets the transmit length of double buffer 0 for a
// double-buffered IN endpoint.
func (t *Table) SetTxDbuf0Count(ep uint8, count uint16) {
	t.SetCount(ep, pma.DirTx, count)
}

// SetTxDbuf1Count sets the transmit length of double buffer 1 for a
// double-buffered IN endpoint. The slot is the rx descriptor, so the
// count merges under the packed allocation bits rather than replacing
// them.
func (t *Table) SetTxDbuf1Count(ep uint8, count uint16) {
	t.mergeCount(ep, pma.DirRx, count)
}

// SetRxDbuf0BufferSize sizes double buffer 0 of a double-buffered OUT
// endpoint, returning the allocated capacity.
func (t *Table) SetRxDbuf0BufferSize(ep uint8, requested uint16) uint16 {
	return t.SetRxBufferSize(ep, pma.DirTx, requested)
}

// SetRxDbuf1BufferSize sizes double buffer 1 of a double-buffered OUT
// endpoint, returning the allocated capacity.
func (t *Table) SetRxDbuf1BufferSize(ep uint8, requested uint16) uint16 {
	return t.SetRxBufferSize(ep, pma.DirRx, requested)
}
