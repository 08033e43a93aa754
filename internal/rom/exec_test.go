package rom

import (
	"testing"

	"github.com/retroenv/bytepusher/internal/rom/romtest"
)

var (
	read24 = romtest.Read24
	step   = romtest.Step
	run    = romtest.Run
)

// frame runs a single display frame and returns the address of the parking instruction.
func frame(t *testing.T, data []byte) uint32 {
	t.Helper()

	pc, ok := romtest.Frame(data)
	if !ok {
		t.Fatalf("program did not park within %d instructions", romtest.FrameSteps)
	}
	return pc
}
