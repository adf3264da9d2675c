package pma

// Peripheral is the process-wide handle to the device controller's two
// memory-mapped regions: the endpoint control register block and the
// packet memory. It is a view onto fixed hardware memory; nothing is
// allocated or released on the device side. All operations in this
// module take the regions explicitly, so a simulated block can stand in
// for the silicon.
//
// This layer provides no locking: callers serialize access, typically
// by touching the peripheral only with its interrupt masked or from a
// single interrupt priority.
type Peripheral struct {
	// Regs is the endpoint control register block. Each endpoint's
	// register occupies 4 bytes; only the low 16 bits are significant
	// on the 16-bit geometries.
	Regs Memory

	// PMA is the packet memory window, including the buffer descriptor
	// table at the configured base.
	PMA Memory
}
