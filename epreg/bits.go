package epreg

// USB_EPnR bit assignments (STM32 reference manual). The write behavior
// of each bit is part of the hardware contract: rw is plain read/write,
// t is toggle-on-write-1, rc_w0 is clear-on-write-0, r is read-only.
const (
	CtrRx   uint32 = 1 << 15 // correct transfer for reception (rc_w0)
	DtogRx  uint32 = 1 << 14 // data toggle, reception (t)
	StatRx  uint32 = 3 << 12 // reception status (t)
	Setup   uint32 = 1 << 11 // setup transaction completed (r)
	EPType  uint32 = 3 << 9  // endpoint type (rw)
	EPKind  uint32 = 1 << 8  // endpoint kind (rw)
	CtrTx   uint32 = 1 << 7  // correct transfer for transmission (rc_w0)
	DtogTx  uint32 = 1 << 6  // data toggle, transmission (t)
	StatTx  uint32 = 3 << 4  // transmission status (t)
	EPAddr  uint32 = 0xF     // endpoint address (rw)

	statRxShift = 12
	statTxShift = 4
	epTypeShift = 9
)

// Field-preserving masks. ANDing a read value with regMask zeroes every
// toggle-sensitive bit, so writing the result back moves nothing; the
// narrower masks additionally drop one rw field so it can be replaced.
const (
	// regMask keeps the non-toggle bits: both CTR flags, SETUP, type,
	// kind, and address.
	regMask = CtrRx | Setup | EPType | EPKind | CtrTx | EPAddr

	typeKeepMask = regMask &^ EPType
	kindKeepMask = regMask &^ EPKind
	addrKeepMask = regMask &^ EPAddr

	// txDtogMask and rxDtogMask keep the non-toggle bits plus the
	// named direction's current status, for the XOR-delta status
	// writes.
	txDtogMask = StatTx | regMask
	rxDtogMask = StatRx | regMask
)

// Type is an endpoint transfer type, pre-shifted to the EP_TYPE field.
type Type uint32

// Endpoint types.
const (
	TypeBulk      Type = 0 << epTypeShift
	TypeControl   Type = 1 << epTypeShift
	TypeIso       Type = 2 << epTypeShift
	TypeInterrupt Type = 3 << epTypeShift
)

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeBulk:
		return "bulk"
	case TypeControl:
		return "control"
	case TypeIso:
		return "isochronous"
	case TypeInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Status is the 2-bit per-direction endpoint state, unshifted.
type Status uint8

// Endpoint statuses.
const (
	StatusDisabled Status = 0 // Endpoint ignores all traffic
	StatusStall    Status = 1 // Requests answered with STALL
	StatusNak      Status = 2 // Requests answered with NAK
	StatusValid    Status = 3 // Endpoint armed for transfer
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusStall:
		return "stall"
	case StatusNak:
		return "nak"
	case StatusValid:
		return "valid"
	default:
		return "unknown"
	}
}
