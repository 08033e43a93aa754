package rom

import "errors"

// Build time precondition violations. They indicate a defect in the program that drives the
// builder and are never worth retrying.
var (
	ErrAddressRange    = errors.New("address exceeds 24 bits")
	ErrTableMisaligned = errors.New("table address is not 256 byte aligned")
	ErrTableInstalled  = errors.New("table already installed")
	ErrTableMissing    = errors.New("table not installed")
)
