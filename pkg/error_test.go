package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrPMASize,
		ErrBTableAlign,
		ErrBTableOverflow,
		ErrBusWidth,
		ErrWindowSize,
		ErrMapping,
		ErrNotMapped,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrPMASize, "unsupported PMA size"},
		{ErrBTableAlign, "buffer table base not 8-byte aligned"},
		{ErrBTableOverflow, "buffer table exceeds PMA capacity"},
		{ErrBusWidth, "invalid bus width for PMA size"},
		{ErrMapping, "hardware mapping failed"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("pma size 4096: %w", ErrPMASize)
	if !errors.Is(wrapped, ErrPMASize) {
		t.Error("wrapped error does not match sentinel")
	}
}
