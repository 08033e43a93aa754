// Package verification verifies that the written ROM file recreates the memory image.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

var (
	ErrSizeMismatch = errors.New("file size mismatch")
	ErrDataMismatch = errors.New("data mismatch")
)

// VerifyOutput reloads the written file and verifies that it equals the start of the
// memory image and that the rest of the image only contains zeros.
func VerifyOutput(logger *log.Logger, fileName string, image []byte) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("reading file for comparison: %w", err)
	}
	if len(data) > len(image) {
		return fmt.Errorf("%w: file has %d bytes, memory image %d", ErrSizeMismatch, len(data), len(image))
	}
	if len(data) > 0 && data[len(data)-1] == 0 {
		return fmt.Errorf("%w: file ends with a zero byte", ErrSizeMismatch)
	}

	if err := checkBufferEqual(logger, image[:len(data)], data); err != nil {
		return fmt.Errorf("comparing file content: %w", err)
	}

	for offset := len(data); offset < len(image); offset++ {
		if image[offset] != 0 {
			return fmt.Errorf("%w: memory at 0x%06X is missing in the file", ErrSizeMismatch, offset)
		}
	}

	logger.Debug("Verified ROM file", log.String("file", fileName), log.Int("size", len(data)))
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", ErrSizeMismatch, len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches", ErrDataMismatch, diffs)
}
