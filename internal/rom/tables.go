package rom

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// TableSize is the size of a lookup table, one entry per byte value.
const TableSize = 256

type table struct {
	name      string
	address   uint32
	installed bool
}

// InstallIdentityTable writes the identity table at the given 256 byte aligned address.
// Entry i contains the value i, which allows loading immediate values by copying from
// table address + value. The cursor is left after the table.
func (b *Builder) InstallIdentityTable(address uint32) error {
	return b.installTable(&b.identityTable, address, func(i int) byte {
		return byte(i)
	})
}

// InstallIncrementTable writes the increment table at the given 256 byte aligned address.
// Entry i contains (i+1) mod 256. The cursor is left after the table.
func (b *Builder) InstallIncrementTable(address uint32) error {
	return b.installTable(&b.incrementTable, address, func(i int) byte {
		return byte(i + 1)
	})
}

// IdentityTable returns the address of the identity table and whether it is installed.
func (b *Builder) IdentityTable() (uint32, bool) {
	return b.identityTable.address, b.identityTable.installed
}

// IncrementTable returns the address of the increment table and whether it is installed.
func (b *Builder) IncrementTable() (uint32, bool) {
	return b.incrementTable.address, b.incrementTable.installed
}

func (b *Builder) installTable(tab *table, address uint32, entry func(i int) byte) error {
	if tab.installed {
		return fmt.Errorf("%w: %s table at 0x%06X", ErrTableInstalled, tab.name, tab.address)
	}
	if address%TableSize != 0 {
		return fmt.Errorf("%w: %s table at 0x%06X", ErrTableMisaligned, tab.name, address)
	}
	if err := checkAddress(address); err != nil {
		return fmt.Errorf("installing %s table: %w", tab.name, err)
	}

	data := make([]byte, TableSize)
	for i := range data {
		data[i] = entry(i)
	}

	if err := b.Org(address); err != nil {
		return fmt.Errorf("installing %s table: %w", tab.name, err)
	}
	if err := b.DB(data); err != nil {
		return fmt.Errorf("installing %s table: %w", tab.name, err)
	}

	tab.address = address
	tab.installed = true
	b.logger.Debug("Installed table",
		log.String("table", tab.name),
		log.Hex("address", address))
	return nil
}

func (b *Builder) requireTable(tab *table) (uint32, error) {
	if !tab.installed {
		return 0, fmt.Errorf("%w: %s table", ErrTableMissing, tab.name)
	}
	return tab.address, nil
}
