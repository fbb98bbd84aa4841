package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := New[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		// Overwriting keeps the original position
		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)
		assert.Equal(t, []string{"one", "two", "three"}, om.Keys())

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)

		assert.True(t, om.Has("one"))
		assert.False(t, om.Has("four"))
	})

	t.Run("deletion", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		om.Delete("one")
		_, exists := om.Get("one")
		assert.False(t, exists)

		// Delete of an absent key should not panic
		om.Delete("non-existent")

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)
		assert.Equal(t, []string{"two"}, om.Keys())
	})

	t.Run("count", func(t *testing.T) {
		om := New[string, int]()
		assert.Equal(t, 0, om.Count())

		om.Set("one", 1)
		assert.Equal(t, 1, om.Count())

		om.Set("two", 2)
		assert.Equal(t, 2, om.Count())

		om.Delete("one")
		assert.Equal(t, 1, om.Count())
	})

	t.Run("front to back iteration", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		pair := om.Front()
		require.NotNil(t, pair)
		assert.Equal(t, "one", pair.Key())
		assert.Equal(t, 1, pair.Value())

		pair = pair.Next()
		require.NotNil(t, pair)
		assert.Equal(t, "two", pair.Key())
		assert.Equal(t, 2, pair.Value())

		pair = pair.Next()
		require.NotNil(t, pair)
		assert.Equal(t, "three", pair.Key())
		assert.Equal(t, 3, pair.Value())

		pair = pair.Prev()
		require.NotNil(t, pair)
		assert.Equal(t, "two", pair.Key())
		assert.Equal(t, 2, pair.Value())

		assert.Nil(t, pair.Next().Next())
	})

	t.Run("back to front iteration", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		pair := om.Back()
		require.NotNil(t, pair)
		assert.Equal(t, "three", pair.Key())
		assert.Equal(t, 3, pair.Value())

		pair = pair.Prev()
		require.NotNil(t, pair)
		assert.Equal(t, "two", pair.Key())

		pair = pair.Prev()
		require.NotNil(t, pair)
		assert.Equal(t, "one", pair.Key())
		assert.Nil(t, pair.Prev())
	})

	t.Run("empty map iteration", func(t *testing.T) {
		om := New[string, int]()

		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())
		assert.Empty(t, om.Keys())
	})

	t.Run("complex types", func(t *testing.T) {
		type complexKey struct {
			id int
		}
		type complexValue struct {
			data string
		}

		om := New[complexKey, complexValue]()
		key1 := complexKey{1}
		val1 := complexValue{"one"}

		om.Set(key1, val1)
		retrieved, exists := om.Get(key1)
		assert.True(t, exists)
		assert.Equal(t, val1, retrieved)
	})

	t.Run("deletion keeps order intact", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		om.Delete("two")
		assert.Equal(t, []string{"one", "three"}, om.Keys())

		pair := om.Front()
		require.NotNil(t, pair)
		assert.Equal(t, "one", pair.Key())

		pair = pair.Next()
		require.NotNil(t, pair)
		assert.Equal(t, "three", pair.Key())
		assert.Nil(t, pair.Next())
	})
}
