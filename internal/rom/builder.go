// Package rom implements a BytePusher ROM builder that expresses all higher level operations
// as copy-jump instructions written into a 16 MiB memory image.
package rom

import (
	"fmt"

	"github.com/retroenv/bytepusher/internal/listing"
	"github.com/retroenv/bytepusher/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Builder builds a single ROM image. It is not safe for concurrent use and every builder
// owns its own memory image and table state.
type Builder struct {
	logger  *log.Logger
	mem     *memory.Image
	listing *listing.Writer

	identityTable  table
	incrementTable table
}

// New returns a builder with an empty memory image.
func New(logger *log.Logger) *Builder {
	return &Builder{
		logger:         logger,
		mem:            memory.New(),
		identityTable:  table{name: "identity"},
		incrementTable: table{name: "increment"},
	}
}

// SetListing enables writing a text listing of all emitted instructions and data.
func (b *Builder) SetListing(w *listing.Writer) {
	b.listing = w
}

// Memory returns the memory image that the builder writes to.
func (b *Builder) Memory() *memory.Image {
	return b.mem
}

// Cursor returns the current write address.
func (b *Builder) Cursor() uint32 {
	return b.mem.Cursor()
}

// AddrAfter returns the address following the next n instructions.
func (b *Builder) AddrAfter(n int) uint32 {
	return b.mem.AddrAfter(n)
}

// Org sets the write cursor to the given address.
func (b *Builder) Org(address uint32) error {
	if err := b.mem.Org(address); err != nil {
		return err
	}
	b.logger.Debug("Setting origin", log.Hex("address", address))

	if b.listing != nil {
		if err := b.listing.Origin(address); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// DB writes a block of data bytes at the cursor.
func (b *Builder) DB(data []byte) error {
	address := b.mem.Cursor()
	if err := b.mem.WriteBytes(data); err != nil {
		return err
	}

	if b.listing != nil {
		if err := b.listing.Data(address, data); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// DBB writes a single data byte at the cursor.
func (b *Builder) DBB(value byte) error {
	return b.DB([]byte{value})
}

func checkAddress(addresses ...uint32) error {
	for _, address := range addresses {
		if address > memory.MaxAddress {
			return fmt.Errorf("%w: 0x%X", ErrAddressRange, address)
		}
	}
	return nil
}
