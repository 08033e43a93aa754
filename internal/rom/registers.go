package rom

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Addresses of the hardware registers at the start of memory.
const (
	InputRegister          = 0x000000 // 2 bytes, keyboard state
	ProgramCounterRegister = 0x000002 // 3 bytes, reloaded into the execution pointer every frame
	ScreenRegister         = 0x000005 // 1 byte, bits 16-23 of the screen buffer address
	AudioRegister          = 0x000006 // 2 bytes, bits 8-23 of the audio buffer address

	RegisterBlockSize = 8
)

// Alignments of the buffers that the page registers can address.
const (
	ScreenAlignment = 0x10000
	AudioAlignment  = 0x100
)

// InitRegisters writes the register block at address 0 and leaves the cursor after it.
// The screen address is stored as its page bits 16-23 and the audio address as its bits 8-23,
// lower bits of unaligned addresses are dropped by the encoding.
func (b *Builder) InitRegisters(inputFlags uint16, program, screen, audio uint32) error {
	if err := checkAddress(program, screen, audio); err != nil {
		return fmt.Errorf("initializing registers: %w", err)
	}
	if screen%ScreenAlignment != 0 || audio%AudioAlignment != 0 {
		b.logger.Warn("Buffer address is not page aligned, lower bits are dropped",
			log.Hex("screen", screen),
			log.Hex("audio", audio))
	}

	if err := b.Org(InputRegister); err != nil {
		return err
	}
	if err := b.mem.Write16(inputFlags); err != nil {
		return err
	}
	if err := b.mem.Write24(program); err != nil {
		return err
	}
	if err := b.mem.Write8(uint8(screen >> 16)); err != nil {
		return err
	}
	if err := b.mem.Write16(uint16(audio >> 8)); err != nil {
		return err
	}

	if b.listing != nil {
		if err := b.listing.Data(InputRegister, b.mem.Bytes()[:RegisterBlockSize]); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}

	b.logger.Debug("Initialized registers",
		log.Hex("program", program),
		log.Hex("screen", screen),
		log.Hex("audio", audio))
	return nil
}
