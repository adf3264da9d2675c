// Package epreg encodes and decodes the per-endpoint control registers
// (USB_EPnR) of the STM32 full-speed USB device controller.
//
// The register mixes three write behaviors in one word:
//
//   - ordinary read/write fields: endpoint address, type, kind
//   - toggle-on-write-1 fields: the two status fields and the two data
//     toggle bits, which flip when a 1 is written and keep their value
//     when a 0 is written
//   - clear-on-write-0 flags: the two correct-transfer (completion)
//     flags, which the peripheral sets on wire events and software
//     clears by writing 0; writing 1 preserves them
//
// Every mutation here follows the same discipline: read the register,
// zero the toggle-sensitive bits that must not move, apply the change,
// re-assert both completion flags as 1, and write back. Clearing one
// completion flag deliberately writes 0 to that flag alone while
// re-asserting the other, so a pending event on the sibling direction
// is never lost. The read/write pair is atomic only against software
// reentrancy, not against the peripheral itself; a flag set by hardware
// between the read and the write can still be lost, which is a known
// property of this register design.
package epreg
