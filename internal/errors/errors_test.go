package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnetErrorRendering(t *testing.T) {
	t.Run("code and message", func(t *testing.T) {
		err := NewValidationError("invalid_hash", "'xyz' is not a valid torrent hash")
		assert.Equal(t, "[invalid_hash] 'xyz' is not a valid torrent hash", err.Error())
	})

	t.Run("cause is appended", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewIOError("open_input", "cannot open input file 'x.yml'", cause)
		assert.Equal(t, "[open_input] cannot open input file 'x.yml': permission denied", err.Error())
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewInputError("parse_input", "cannot parse input file", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestIsByTypeAndCode(t *testing.T) {
	err := NewValidationError("invalid_tracker", "bad URI")
	target := NewValidationError("invalid_tracker", "different message")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, NewValidationError("invalid_hash", "bad hash")))
}

func TestTypePredicates(t *testing.T) {
	validation := NewValidationError("invalid_hash", "bad")
	usage := NewUsageError("no_source", "either --hash or --file is required")

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(usage))
	assert.True(t, IsUsageError(usage))
	assert.False(t, IsUsageError(validation))

	// predicates see through wrapping
	wrapped := fmt.Errorf("context: %w", usage)
	require.True(t, IsUsageError(wrapped))
	assert.True(t, IsType(wrapped, ErrorTypeUsage))
}
