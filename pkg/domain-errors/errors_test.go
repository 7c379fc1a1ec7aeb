package dErrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeNotFound, "user missing")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeValidation))
	})

	t.Run("matches wrapped code", func(t *testing.T) {
		cause := New(CodeNotFound, "book missing")
		err := Wrap(CodeValidation, "payload references missing book", cause)
		assert.True(t, HasCode(err, CodeValidation))
		assert.True(t, HasCode(err, CodeNotFound))
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	})

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("store: %w", New(CodeConflict, "email taken"))
		assert.True(t, HasCode(err, CodeConflict))
	})
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad phone")))
	require.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "bad phone", MessageOf(New(CodeValidation, "bad phone")))
	assert.Equal(t, "internal error", MessageOf(errors.New("boom")))
}
