package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsType(t *testing.T) {
	err := Wrap(&codeError{code: 2}, "watch failed")

	target, ok := AsType[*codeError](err)
	require.True(t, ok)
	assert.Equal(t, 2, target.code)

	_, ok = AsType[*codeError](New("other"))
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	sentinel := New("not found")

	assert.NoError(t, Wrap(nil, "load"))
	assert.True(t, Is(Wrapf(sentinel, "load %s", "cart"), sentinel))
	assert.EqualError(t, Wrapf(sentinel, "load %s", "cart"), "load cart: not found")
	assert.True(t, Is(Join(nil, sentinel), sentinel))
}
