package ocr

import "fmt"

// UnsupportedFormatError reports a file extension the recognizer cannot handle.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported extension: %q", e.Ext)
}

// CapabilityError reports a missing external binary. Callers can show an
// install hint instead of a generic failure.
type CapabilityError struct {
	Binary string
	Hint   string
}

func (e *CapabilityError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("ocr capability unavailable: %s not found (%s)", e.Binary, e.Hint)
	}
	return fmt.Sprintf("ocr capability unavailable: %s not found", e.Binary)
}
