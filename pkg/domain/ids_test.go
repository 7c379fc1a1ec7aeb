package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bookswap/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant: identifiers must
// be valid, non-empty, non-nil UUIDs.
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseBookID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseSwapRequestID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseFeedbackID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, FeedbackID(valid), id)
	})
}

func TestIDRoundTrip(t *testing.T) {
	id := NewUserID()
	parsed, err := ParseUserID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, id.IsNil())
}

// TestTypeDistinction verifies the compiler enforces type safety between
// entity identifiers. This is primarily a compile-time check.
func TestTypeDistinction(t *testing.T) {
	userID := UserID(uuid.New())
	bookID := BookID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ UserID = bookID   // compile error
	// var _ BookID = userID   // compile error

	assert.NotEqual(t, uuid.UUID(userID), uuid.UUID(bookID))
}
