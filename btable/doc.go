// Package btable models the buffer descriptor table (BTABLE) of the
// STM32 full-speed USB device controller.
//
// The table lives inside the packet memory area and holds one
// descriptor pair per endpoint: a transmit descriptor and a receive
// descriptor, each carrying the buffer's PMA byte address and a byte
// count. Only the low 10 bits of a count are the byte count; on the
// receive side the upper bits pack the buffer's allocated capacity as a
// block-size/num-blocks encoding that must survive count updates.
//
// All raw memory access is delegated to a [pma.Access] strategy, so the
// same model serves the three bus geometries. The peripheral's DMA
// engine observes every mutation immediately; there is no caching
// layer.
package btable
