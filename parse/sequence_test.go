package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Token(t *testing.T) {
	seq := NewSequence([]string{"-a", "value"})

	tok, err := seq.Token(0)
	require.NoError(t, err)
	assert.Equal(t, "-a", tok)

	tok, err = seq.Token(1)
	require.NoError(t, err)
	assert.Equal(t, "value", tok)

	_, err = seq.Token(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = seq.Token(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestSequence_Expand(t *testing.T) {
	t.Run("one token into several", func(t *testing.T) {
		seq := NewSequence([]string{"keep", "-abc", "tail"})

		err := seq.Expand(1, "-a", "-b", "-c")
		require.NoError(t, err)
		assert.Equal(t, []string{"keep", "-a", "-b", "-c", "tail"}, seq.Tokens())
		assert.Equal(t, 5, seq.Len())
	})

	t.Run("one token into one", func(t *testing.T) {
		seq := NewSequence([]string{"--s=", "tail"})

		err := seq.Expand(0, "--s")
		require.NoError(t, err)
		assert.Equal(t, []string{"--s", "tail"}, seq.Tokens())
	})

	t.Run("empty replacement removes the token", func(t *testing.T) {
		seq := NewSequence([]string{"a", "b", "c"})

		err := seq.Expand(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, seq.Tokens())
	})

	t.Run("positions before the expansion are stable", func(t *testing.T) {
		seq := NewSequence([]string{"first", "--s=1,2", "last"})

		require.NoError(t, seq.Expand(1, "--s", "1", "2"))

		tok, err := seq.Token(0)
		require.NoError(t, err)
		assert.Equal(t, "first", tok)

		tok, err = seq.Token(4)
		require.NoError(t, err)
		assert.Equal(t, "last", tok)
	})

	t.Run("out of range", func(t *testing.T) {
		seq := NewSequence([]string{"a"})
		assert.ErrorIs(t, seq.Expand(3, "x"), ErrInvalidPosition)
	})
}

func TestSequence_Compact(t *testing.T) {
	seq := NewSequence([]string{"-F", "log.txt", "--verbose", "arg1", "arg2"})

	seq.Compact(map[int]struct{}{0: {}, 1: {}, 2: {}})
	assert.Equal(t, []string{"arg1", "arg2"}, seq.Tokens())

	// A second compaction with no marks changes nothing
	seq.Compact(nil)
	assert.Equal(t, []string{"arg1", "arg2"}, seq.Tokens())
}

func TestSequence_Replace(t *testing.T) {
	seq := NewSequence([]string{"old"})

	seq.Replace("new", "tokens")
	assert.Equal(t, []string{"new", "tokens"}, seq.Tokens())

	seq.Replace()
	assert.Zero(t, seq.Len())
}
