//go:build linux

package pma

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ardnew/fsdev/pkg"
)

// MappedBlock is a Memory window mapped from a device file such as
// /dev/mem, for bring-up and debug tooling on embedded Linux hosts
// where the peripheral's bus address range is exposed by the kernel.
type MappedBlock struct {
	f   *os.File
	mem []byte
}

// MapDevice maps size bytes of path starting at bus address base.
// The offset and size must satisfy the kernel's page granularity.
func MapDevice(path string, base int64, size int) (*MappedBlock, error) {
	if size <= 0 {
		return nil, fmt.Errorf("map %s: %w", path, pkg.ErrWindowSize)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	mem, err := unix.Mmap(int(f.Fd()), base, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s at 0x%X (%v): %w", path, base, err, pkg.ErrMapping)
	}
	pkg.LogInfo(pkg.ComponentMap, "hardware window mapped",
		"path", path, "base", fmt.Sprintf("0x%X", base), "size", size)
	return &MappedBlock{f: f, mem: mem}, nil
}

// Close unmaps the window and closes the device file.
func (m *MappedBlock) Close() error {
	if m.mem == nil {
		return pkg.ErrNotMapped
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	m.f = nil
	return err
}

// The accessors load and store through pointers of the exact width so
// the compiler cannot widen, split, or merge accesses to the device
// region. 32-bit access to a 16-bit-only PMA bus faults on hardware.

// Read16 reads the halfword at byte offset off.
func (m *MappedBlock) Read16(off uint32) uint16 {
	return *(*uint16)(unsafe.Pointer(&m.mem[off]))
}

// Write16 writes the halfword at byte offset off.
func (m *MappedBlock) Write16(off uint32, v uint16) {
	*(*uint16)(unsafe.Pointer(&m.mem[off])) = v
}

// Read32 reads the word at byte offset off.
func (m *MappedBlock) Read32(off uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(&m.mem[off]))
}

// Write32 writes the word at byte offset off.
func (m *MappedBlock) Write32(off uint32, v uint32) {
	*(*uint32)(unsafe.Pointer(&m.mem[off])) = v
}
