package textconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	narrow, err := Units("abc", false)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), narrow)

	w, err := Units("ab", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 'b', 0}, w)

	w, err = Units("é", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe9, 0x00}, w)

	empty, err := Units("", true)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAppendUnits(t *testing.T) {
	prefix := []byte{0xff}

	out, err := AppendUnits(prefix, "ab", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 'a', 0, 'b', 0}, out)

	out, err = AppendUnits(out[:1], "hi", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 'h', 'i'}, out)

	out, err = AppendUnits(nil, "\U0001F600", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3d, 0xd8, 0x00, 0xde}, out)
}

func TestString(t *testing.T) {
	s, err := String([]byte{'h', 0, 'i', 0, 'x'}, true)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	s, err = String([]byte("hello"), false)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestTerminated(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		isWide bool
		want   []byte
	}{
		{"narrow terminated", []byte{'a', 'b', 0, 'c'}, false, []byte{'a', 'b'}},
		{"narrow full", []byte{'a', 'b'}, false, []byte{'a', 'b'}},
		{"wide terminated", []byte{'a', 0, 0, 0, 'b', 0}, true, []byte{'a', 0}},
		{"wide odd tail", []byte{'a', 0, 'b'}, true, []byte{'a', 0}},
		{"wide unit with zero high byte", []byte{0, 'a', 0, 0}, true, []byte{0, 'a'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terminated(tt.in, tt.isWide))
		})
	}
}

func TestCharSize(t *testing.T) {
	assert.Equal(t, 1, CharSize(false))
	assert.Equal(t, 2, CharSize(true))
	assert.NotNil(t, Encoding())
}
