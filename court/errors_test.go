package court

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("socket closed")
	err := newEnforcement("The guards refuse!", cause)

	assert.Equal(t, "The guards refuse!: socket closed", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handling banish: %w", err)
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindEnforcementFailed, kind)
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestUserMessageCoversAllKinds(t *testing.T) {
	kinds := []ErrorKind{KindValidation, KindAuthorityDenied, KindEnforcementFailed, KindPersistenceFailed}
	seen := map[string]bool{}
	for _, kind := range kinds {
		msg := UserMessage(kind)
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "kinds must not share messages")
		seen[msg] = true
	}
}

func TestValidationErrorHasNoCause(t *testing.T) {
	err := newValidation("too long")
	assert.Equal(t, "too long", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
