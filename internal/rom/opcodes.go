package rom

import (
	"fmt"

	"github.com/retroenv/bytepusher/internal/memory"
)

// Sizes of the macro instructions in bytes.
const (
	LoadImmediate24Size = 3 * memory.InstructionSize
	IncrementSize       = 2 * memory.InstructionSize
	SyncSize            = LoadImmediate24Size + memory.InstructionSize
)

// CopyJump emits the single hardware instruction: copy the byte at source to target,
// then continue execution at next.
func (b *Builder) CopyJump(source, target, next uint32) error {
	if err := checkAddress(source, target, next); err != nil {
		return err
	}
	if err := b.mem.Check(memory.InstructionSize); err != nil {
		return err
	}
	return b.emit(source, target, next, fmt.Sprintf("bbj $%06X, $%06X, $%06X", source, target, next))
}

// Nop emits an instruction that continues with the following instruction.
// It copies address 0 onto itself, which is only inert as long as the program does not
// rely on the first byte of the input register changing during the copy.
func (b *Builder) Nop() error {
	if err := b.reserve(memory.InstructionSize); err != nil {
		return err
	}
	return b.emit(0, 0, b.mem.AddrAfter(1), "nop")
}

// Wait emits an instruction that jumps to itself. The program stays parked until the
// next frame reloads the execution pointer from the program counter register.
func (b *Builder) Wait() error {
	if err := b.mem.Check(memory.InstructionSize); err != nil {
		return err
	}
	return b.emit(0, 0, b.mem.Cursor(), "wait")
}

// Jump emits an unconditional jump to the given address.
func (b *Builder) Jump(address uint32) error {
	if err := checkAddress(address); err != nil {
		return err
	}
	if err := b.mem.Check(memory.InstructionSize); err != nil {
		return err
	}
	return b.emit(0, 0, address, fmt.Sprintf("jmp $%06X", address))
}

// Copy emits a byte copy from source to target that continues with the following instruction.
func (b *Builder) Copy(source, target uint32) error {
	if err := checkAddress(source, target); err != nil {
		return err
	}
	if err := b.reserve(memory.InstructionSize); err != nil {
		return err
	}
	return b.copy(source, target, fmt.Sprintf("cpy $%06X, $%06X", source, target))
}

// LoadImmediate emits a copy of a constant value to target using the identity table.
func (b *Builder) LoadImmediate(value uint8, target uint32) error {
	identity, err := b.requireTable(&b.identityTable)
	if err != nil {
		return err
	}
	if err := checkAddress(target); err != nil {
		return err
	}
	if err := b.reserve(memory.InstructionSize); err != nil {
		return err
	}
	return b.loadImmediate(identity, value, target)
}

// LoadImmediate24 emits three immediate loads that store the 24-bit value big-endian
// at target, target+1 and target+2.
func (b *Builder) LoadImmediate24(value, target uint32) error {
	identity, err := b.requireTable(&b.identityTable)
	if err != nil {
		return err
	}
	if err := checkAddress(value, target+2); err != nil {
		return err
	}
	if err := b.reserve(LoadImmediate24Size); err != nil {
		return err
	}
	return b.loadImmediate24(identity, value, target)
}

// Increment emits an in place increment of the byte stored at address, wrapping at 256.
// The first instruction copies the current value into the low byte of the source field of
// the second instruction, which then copies the matching increment table entry back.
// The single instruction form indexed by the address is available as IncrementConst.
func (b *Builder) Increment(address uint32) error {
	increment, err := b.requireTable(&b.incrementTable)
	if err != nil {
		return err
	}
	if err := checkAddress(address); err != nil {
		return err
	}
	if err := b.reserve(IncrementSize); err != nil {
		return err
	}

	// source field occupies the first 3 bytes of the second instruction, low byte last
	patch := b.mem.AddrAfter(1) + 2
	if err := b.copy(address, patch, fmt.Sprintf("inc $%06X (patch)", address)); err != nil {
		return err
	}
	return b.copy(increment, address, fmt.Sprintf("inc $%06X", address))
}

// IncrementConst emits a single copy of the increment table entry selected by the low byte
// of address into address. The result is always (address&0xFF)+1, which is only an increment
// when the stored value equals the low byte of its address.
func (b *Builder) IncrementConst(address uint32) error {
	increment, err := b.requireTable(&b.incrementTable)
	if err != nil {
		return err
	}
	if err := checkAddress(address); err != nil {
		return err
	}
	if err := b.reserve(memory.InstructionSize); err != nil {
		return err
	}
	return b.copy(increment+(address&0xFF), address, fmt.Sprintf("incc $%06X", address))
}

// Sync emits a wait for the next frame. The address following the macro is stored in the
// program counter register before parking, so the frame reload resumes right after it.
func (b *Builder) Sync() error {
	identity, err := b.requireTable(&b.identityTable)
	if err != nil {
		return err
	}
	if err := b.reserve(SyncSize); err != nil {
		return err
	}

	resume := b.mem.Cursor() + SyncSize
	if err := b.loadImmediate24(identity, resume, ProgramCounterRegister); err != nil {
		return err
	}
	return b.emit(0, 0, b.mem.Cursor(), "wait (sync)")
}

// reserve checks that size bytes of instructions fit at the cursor and that the address
// execution falls through to afterwards is addressable.
func (b *Builder) reserve(size int) error {
	if err := b.mem.Check(size); err != nil {
		return err
	}
	if err := checkAddress(b.mem.Cursor() + uint32(size)); err != nil {
		return fmt.Errorf("instruction at 0x%06X falls through: %w", b.mem.Cursor(), err)
	}
	return nil
}

func (b *Builder) loadImmediate24(identity, value, target uint32) error {
	values := [3]uint8{byte(value >> 16), byte(value >> 8), byte(value)}
	for i, v := range values {
		if err := b.loadImmediate(identity, v, target+uint32(i)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) loadImmediate(identity uint32, value uint8, target uint32) error {
	return b.copy(identity+uint32(value), target, fmt.Sprintf("ldi #$%02X, $%06X", value, target))
}

func (b *Builder) copy(source, target uint32, text string) error {
	return b.emit(source, target, b.mem.AddrAfter(1), text)
}

// emit writes a copy-jump instruction. Callers have to check address ranges and
// available space before, so that a macro is either written completely or not at all.
func (b *Builder) emit(source, target, next uint32, text string) error {
	address := b.mem.Cursor()
	for _, field := range [3]uint32{source, target, next} {
		if err := b.mem.Write24(field); err != nil {
			return err
		}
	}

	if b.listing != nil {
		if err := b.listing.Instruction(address, source, target, next, text); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
