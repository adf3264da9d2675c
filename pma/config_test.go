package pma

import (
	"errors"
	"testing"

	"github.com/ardnew/fsdev/pkg"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"512 default", Config{PMASize: 512}, nil},
		{"1024 default", Config{PMASize: 1024}, nil},
		{"2048 32-bit", Config{PMASize: 2048, Bus32: true}, nil},
		{"2048 16-bit fallback", Config{PMASize: 2048}, nil},
		{"base 8", Config{PMASize: 1024, BTableBase: 8}, nil},
		{"base 448 within 512", Config{PMASize: 512, BTableBase: 448}, nil},
		{"unsupported size", Config{PMASize: 256}, pkg.ErrPMASize},
		{"zero size", Config{}, pkg.ErrPMASize},
		{"misaligned base", Config{PMASize: 1024, BTableBase: 4}, pkg.ErrBTableAlign},
		{"misaligned base 10", Config{PMASize: 512, BTableBase: 10}, pkg.ErrBTableAlign},
		{"table overflows", Config{PMASize: 512, BTableBase: 456}, pkg.ErrBTableOverflow},
		{"32-bit on 512", Config{PMASize: 512, Bus32: true}, pkg.ErrBusWidth},
		{"32-bit on 1024", Config{PMASize: 1024, Bus32: true}, pkg.ErrBusWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigGeometry(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Geometry
	}{
		{"512", Config{PMASize: 512}, Bus16Paired},
		{"1024", Config{PMASize: 1024}, Bus16Strided},
		{"2048 32-bit", Config{PMASize: 2048, Bus32: true}, Bus32},
		{"2048 16-bit", Config{PMASize: 2048}, Bus16Strided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Geometry(); got != tt.want {
				t.Errorf("Geometry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigTableBytes(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want uint32
	}{
		// 8 endpoints * 8 bytes, doubled by the paired stride.
		{"512 stride 2", Config{PMASize: 512}, 128},
		{"1024 stride 1", Config{PMASize: 1024}, 64},
		{"2048 32-bit", Config{PMASize: 2048, Bus32: true}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.TableBytes(); got != tt.want {
				t.Errorf("TableBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeometryStride(t *testing.T) {
	if got := Bus16Paired.Stride(); got != 2 {
		t.Errorf("Bus16Paired.Stride() = %d, want 2", got)
	}
	if got := Bus16Strided.Stride(); got != 1 {
		t.Errorf("Bus16Strided.Stride() = %d, want 1", got)
	}
	if got := Bus32.Stride(); got != 1 {
		t.Errorf("Bus32.Stride() = %d, want 1", got)
	}
}

func TestGeometryString(t *testing.T) {
	tests := []struct {
		g    Geometry
		want string
	}{
		{Bus16Paired, "16-bit paired"},
		{Bus16Strided, "16-bit strided"},
		{Bus32, "32-bit direct"},
		{Geometry(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.g.String(); got != tt.want {
			t.Errorf("Geometry(%d).String() = %q, want %q", tt.g, got, tt.want)
		}
	}
}

func TestDirString(t *testing.T) {
	if got := DirTx.String(); got != "tx" {
		t.Errorf("DirTx.String() = %q, want %q", got, "tx")
	}
	if got := DirRx.String(); got != "rx" {
		t.Errorf("DirRx.String() = %q, want %q", got, "rx")
	}
}
