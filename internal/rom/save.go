package rom

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// Bytes returns a copy of the memory image without its trailing zero bytes.
// The virtual machine treats memory beyond the end of a ROM file as zero.
func (b *Builder) Bytes() []byte {
	data := b.mem.Bytes()
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}

	trimmed := make([]byte, end)
	copy(trimmed, data[:end])
	return trimmed
}

// WriteTo writes the trimmed memory image to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("writing rom: %w", err)
	}
	return int64(n), nil
}

// SaveToFile writes the trimmed memory image to the named file.
func (b *Builder) SaveToFile(fileName string) error {
	data := b.Bytes()
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("writing file '%s': %w", fileName, err)
	}

	b.logger.Info("Saved ROM",
		log.String("file", fileName),
		log.Int("size", len(data)))
	return nil
}
