package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	err := NewOptionError(CodeRequiredOptionMissing, "Unable to find required option: name", ErrNotFound)

	assert.Equal(t, "Unable to find required option: name", err.Error())
	assert.True(t, errors.Is(err, ErrOptionResolution))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrModalFieldResolution))
	assert.False(t, IsTypeMismatch(err))

	wrapped := fmt.Errorf("handling command: %w", err)
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, CodeRequiredOptionMissing, Code(wrapped))
}

func TestModalFieldError(t *testing.T) {
	err := NewModalFieldError(CodeFieldTypeMismatch, "Expected field type TextInput. Received: Checkbox", ErrTypeMismatch)

	assert.ErrorIs(t, err, ErrModalFieldResolution)
	assert.True(t, IsTypeMismatch(err))

	var resErr *Error
	assert.True(t, errors.As(err, &resErr))
	assert.Equal(t, CodeFieldTypeMismatch, resErr.Code)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, CodeUnknown, Code(errors.New("boom")))
	assert.Equal(t, CodeGroupMissing, Code(NewOptionError(CodeGroupMissing, "Unable to find group", ErrNotFound)))
}

func TestUnwrapWithoutCause(t *testing.T) {
	err := &Error{Code: CodeUnknown, Message: "bare"}
	assert.Empty(t, err.Unwrap())
	assert.False(t, IsNotFound(err))
}
