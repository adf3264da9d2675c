// Package pma provides word-level access to the packet memory area (PMA)
// of the STM32 full-speed USB device controller.
//
// The peripheral family exposes three physical access geometries for the
// same logical memory, fixed by the device's PMA capacity and bus width:
//
//   - 512-byte devices: every 16-bit datum occupies a 32-bit-aligned slot
//     (stride 2)
//   - 1024-byte devices: 16-bit data densely packed (stride 1)
//   - 2048-byte devices: 32-bit access only, one packed word per
//     buffer descriptor
//
// The [Access] interface hides the geometry behind a uniform
// word-at-index primitive. A concrete implementation is selected once,
// at configuration time, by [Select]; the geometry never changes while
// the peripheral is in use.
//
// Memory itself is reached through the [Memory] interface. [SimBlock]
// backs tests and examples with an in-process block; [MappedBlock]
// (Linux) maps a real hardware window from a device file. Every Memory
// operation is a fresh device access: values are never cached, because
// the peripheral mutates the region asynchronously on wire events.
package pma
