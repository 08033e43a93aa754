package roms

import (
	"slices"
	"testing"

	"github.com/retroenv/bytepusher/internal/rom"
	"github.com/retroenv/bytepusher/internal/rom/romtest"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// machine executes a built program frame by frame.
type machine struct {
	t    *testing.T
	data []byte
}

func newMachine(t *testing.T, b *rom.Builder) *machine {
	t.Helper()
	return &machine{
		t:    t,
		data: slices.Clone(b.Memory().Bytes()),
	}
}

// frame runs one frame and returns the screen page register afterwards.
func (m *machine) frame() uint8 {
	m.t.Helper()

	if _, ok := romtest.Frame(m.data); !ok {
		m.t.Fatalf("program did not wait for the next frame within %d instructions", romtest.FrameSteps)
	}
	return m.data[rom.ScreenRegister]
}

// screens runs count frames and returns the screen page shown in each of them.
func (m *machine) screens(count int) []uint8 {
	m.t.Helper()

	pages := make([]uint8, 0, count)
	for range count {
		pages = append(pages, m.frame())
	}
	return pages
}

func newBuilder(t *testing.T) *rom.Builder {
	t.Helper()
	return rom.New(log.NewTestLogger(t))
}

func assertRegisters(t *testing.T, b *rom.Builder, layout Layout) {
	t.Helper()

	mem := b.Memory()
	pc, err := mem.Read24(rom.ProgramCounterRegister)
	assert.NoError(t, err)
	assert.Equal(t, layout.Program, pc)

	screen, err := mem.Read8(rom.ScreenRegister)
	assert.NoError(t, err)
	assert.Equal(t, uint8(layout.Screen>>16), screen)

	audio, err := mem.Read16(rom.AudioRegister)
	assert.NoError(t, err)
	assert.Equal(t, uint16(layout.Audio>>8), audio)
}
