package verification

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "test.BytePusher")
	assert.NoError(t, os.WriteFile(fileName, data, 0600))
	return fileName
}

func TestVerifyOutput(t *testing.T) {
	// mismatches are logged at error level, which fails tests using a test logger
	logger := log.NewNop()
	image := []byte{1, 2, 0, 3, 0, 0, 0, 0}

	tests := []struct {
		name string
		file []byte
		err  error
	}{
		{"matching", []byte{1, 2, 0, 3}, nil},
		{"truncated", []byte{1, 2}, ErrSizeMismatch},
		{"trailing zero", []byte{1, 2, 0, 3, 0}, ErrSizeMismatch},
		{"too long", []byte{1, 2, 0, 3, 0, 0, 0, 0, 1}, ErrSizeMismatch},
		{"changed byte", []byte{1, 9, 0, 3}, ErrDataMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyOutput(logger, writeFile(t, tt.file), image)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.err))
			}
		})
	}
}

func TestVerifyOutputEmpty(t *testing.T) {
	logger := log.NewTestLogger(t)
	assert.NoError(t, VerifyOutput(logger, writeFile(t, nil), make([]byte, 16)))
}

func TestVerifyOutputMissingFile(t *testing.T) {
	err := VerifyOutput(log.NewTestLogger(t), filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorContains(t, err, "reading file")
}

func TestVerifyOutputMatching(t *testing.T) {
	logger := log.NewTestLogger(t)
	assert.NoError(t, VerifyOutput(logger, writeFile(t, []byte{1, 2, 0, 3}), []byte{1, 2, 0, 3, 0, 0}))
}

func TestCheckBufferEqual(t *testing.T) {
	assert.NoError(t, checkBufferEqual(log.NewTestLogger(t), []byte{1, 2}, []byte{1, 2}))

	logger := log.NewNop()
	assert.True(t, errors.Is(checkBufferEqual(logger, []byte{1}, []byte{1, 2}), ErrSizeMismatch))

	err := checkBufferEqual(logger, make([]byte, 20), make([]byte, 20))
	assert.NoError(t, err)

	changed := make([]byte, 20)
	for i := range changed {
		changed[i] = 1
	}
	err = checkBufferEqual(logger, make([]byte, 20), changed)
	assert.ErrorContains(t, err, "20 offset mismatches")
}
