package pkg

import "errors"

// Configuration and hardware-window errors.
var (
	// ErrPMASize indicates an unsupported packet memory capacity.
	ErrPMASize = errors.New("unsupported PMA size")

	// ErrBTableAlign indicates a buffer table base that is not 8-byte aligned.
	ErrBTableAlign = errors.New("buffer table base not 8-byte aligned")

	// ErrBTableOverflow indicates the buffer table does not fit in the PMA.
	ErrBTableOverflow = errors.New("buffer table exceeds PMA capacity")

	// ErrBusWidth indicates an invalid bus-width/geometry combination.
	ErrBusWidth = errors.New("invalid bus width for PMA size")

	// ErrWindowSize indicates a memory window too small for the peripheral.
	ErrWindowSize = errors.New("memory window too small")

	// ErrMapping indicates a hardware memory mapping failure.
	ErrMapping = errors.New("hardware mapping failed")

	// ErrNotMapped indicates an operation on an unmapped window.
	ErrNotMapped = errors.New("window not mapped")
)
