// Package listing writes a human readable listing of the instructions and data of a ROM.
package listing

import (
	"fmt"
	"io"
	"strings"
)

const dataBytesPerLine = 16

// Writer writes listing lines to an output.
type Writer struct {
	writer io.Writer
}

// New returns a listing writer that outputs to w.
func New(w io.Writer) *Writer {
	return &Writer{
		writer: w,
	}
}

// Origin writes an origin directive.
func (w *Writer) Origin(address uint32) error {
	if _, err := fmt.Fprintf(w.writer, "\n.org $%06X\n", address); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	return nil
}

// Instruction writes a single copy-jump instruction with its raw fields and description.
func (w *Writer) Instruction(address, source, target, next uint32, text string) error {
	if _, err := fmt.Fprintf(w.writer, "  %-32s ; $%06X  %06X %06X %06X\n", text, address, source, target, next); err != nil {
		return fmt.Errorf("writing instruction: %w", err)
	}
	return nil
}

// Data writes a data block, bundling dataBytesPerLine bytes per line.
func (w *Writer) Data(address uint32, data []byte) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "$%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}
		line := strings.TrimRight(buf.String(), ", ")

		if _, err := fmt.Fprintf(w.writer, "  %s ; $%06X\n", line, address+uint32(i)); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		i += toWrite
		remaining -= toWrite
	}
	return nil
}
