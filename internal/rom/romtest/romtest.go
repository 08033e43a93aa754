// Package romtest executes copy-jump programs for tests of the ROM builder and its programs.
package romtest

// FrameSteps is the number of instructions the machine executes per frame.
const FrameSteps = 65536

// programCounter is the address of the 24-bit program counter register.
const programCounter = 0x000002

// Read24 reads the big-endian 24-bit value at address.
func Read24(data []byte, address uint32) uint32 {
	return uint32(data[address])<<16 | uint32(data[address+1])<<8 | uint32(data[address+2])
}

// Step executes the copy-jump at pc and returns the address of the next instruction.
func Step(data []byte, pc uint32) uint32 {
	source := Read24(data, pc)
	target := Read24(data, pc+3)
	next := Read24(data, pc+6)
	data[target] = data[source]
	return next
}

// Run executes count instructions starting at pc.
func Run(data []byte, pc uint32, count int) uint32 {
	for range count {
		pc = Step(data, pc)
	}
	return pc
}

// Frame simulates a single display frame: the execution pointer is reloaded from the
// program counter register and instructions execute until the program parks in a
// self loop. It returns the address of the parking instruction, or false if the
// program did not park within FrameSteps instructions.
func Frame(data []byte) (uint32, bool) {
	pc := Read24(data, programCounter)
	for range FrameSteps {
		next := Step(data, pc)
		if next == pc {
			return pc, true
		}
		pc = next
	}
	return 0, false
}
