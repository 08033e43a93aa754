// Package memory implements the byte addressable BytePusher memory image with a write cursor.
package memory

import (
	"errors"
	"fmt"
)

// Size is the size of the complete 24-bit address space.
const Size = 1 << 24

// MaxAddress is the highest addressable byte.
const MaxAddress = Size - 1

// InstructionSize is the size of a single copy-jump instruction: 3 address fields of 3 bytes each.
const InstructionSize = 9

// ErrOutOfBounds is returned for reads, writes or origins outside of the address space.
var ErrOutOfBounds = errors.New("address out of bounds")

// Image is a fixed size memory image with a write cursor.
type Image struct {
	data   []byte
	cursor uint32
}

// New returns a zero filled memory image with the cursor at address 0.
func New() *Image {
	return &Image{
		data: make([]byte, Size),
	}
}

// Cursor returns the current write address.
func (m *Image) Cursor() uint32 {
	return m.cursor
}

// Org moves the cursor to the given address.
func (m *Image) Org(address uint32) error {
	if address > MaxAddress {
		return fmt.Errorf("%w: origin 0x%06X", ErrOutOfBounds, address)
	}
	m.cursor = address
	return nil
}

// AddrAfter returns the address that follows the next n instructions written at the cursor.
func (m *Image) AddrAfter(n int) uint32 {
	return m.cursor + uint32(n*InstructionSize)
}

// Remaining returns the number of bytes that can still be written at the cursor.
func (m *Image) Remaining() int {
	return Size - int(m.cursor)
}

// Check returns an error if size bytes can not be written at the cursor.
func (m *Image) Check(size int) error {
	if size > m.Remaining() {
		return fmt.Errorf("%w: writing %d bytes at 0x%06X", ErrOutOfBounds, size, m.cursor)
	}
	return nil
}

// Write8 writes a byte at the cursor.
func (m *Image) Write8(value uint8) error {
	if err := m.Check(1); err != nil {
		return err
	}
	m.data[m.cursor] = value
	m.cursor++
	return nil
}

// Write16 writes a big-endian word at the cursor.
func (m *Image) Write16(value uint16) error {
	if err := m.Check(2); err != nil {
		return err
	}
	m.data[m.cursor] = byte(value >> 8)
	m.data[m.cursor+1] = byte(value)
	m.cursor += 2
	return nil
}

// Write24 writes the lower 24 bits of value big-endian at the cursor.
func (m *Image) Write24(value uint32) error {
	if err := m.Check(3); err != nil {
		return err
	}
	m.data[m.cursor] = byte(value >> 16)
	m.data[m.cursor+1] = byte(value >> 8)
	m.data[m.cursor+2] = byte(value)
	m.cursor += 3
	return nil
}

// WriteBytes writes a data block at the cursor. Nothing is written if the block does not fit.
func (m *Image) WriteBytes(data []byte) error {
	if err := m.Check(len(data)); err != nil {
		return err
	}
	copy(m.data[m.cursor:], data)
	m.cursor += uint32(len(data))
	return nil
}

// Read8 reads the byte at the given address.
func (m *Image) Read8(address uint32) (uint8, error) {
	if err := checkRange(address, 1); err != nil {
		return 0, err
	}
	return m.data[address], nil
}

// Read16 reads the big-endian word at the given address.
func (m *Image) Read16(address uint32) (uint16, error) {
	if err := checkRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Read24 reads the big-endian 24-bit value at the given address.
func (m *Image) Read24(address uint32) (uint32, error) {
	if err := checkRange(address, 3); err != nil {
		return 0, err
	}
	return uint32(m.data[address])<<16 | uint32(m.data[address+1])<<8 | uint32(m.data[address+2]), nil
}

// Bytes returns the complete memory image. The returned slice must not be modified.
func (m *Image) Bytes() []byte {
	return m.data
}

func checkRange(address uint32, size int) error {
	if uint64(address)+uint64(size) > Size {
		return fmt.Errorf("%w: reading %d bytes at 0x%06X", ErrOutOfBounds, size, address)
	}
	return nil
}
