package datastructure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoord(t *testing.T, lat, lon string) GeoCoord {
	t.Helper()
	c, err := NewGeoCoord(lat, lon)
	require.NoError(t, err)
	return c
}

func TestOrderedMapAssociateOverwrite(t *testing.T) {
	m := NewOrderedMap[GeoCoord, string](CompareGeoCoord)

	c := mustCoord(t, "34.0547000", "-118.4794734")
	m.Associate(c, "v1")

	got := m.Find(c)
	require.NotNil(t, got)
	assert.Equal(t, "v1", *got)

	m.Associate(c, "v2")
	got = m.Find(c)
	require.NotNil(t, got)
	assert.Equal(t, "v2", *got)
	assert.Equal(t, 1, m.Size())
}

func TestOrderedMapFindMissing(t *testing.T) {
	m := NewOrderedMapOf[string, int]()
	assert.Nil(t, m.Find("nope"))

	m.Associate("a", 1)
	assert.Nil(t, m.Find("b"))
	assert.False(t, m.Contains("b"))
	assert.True(t, m.Contains("a"))
}

func TestOrderedMapTextualKeys(t *testing.T) {
	m := NewOrderedMap[GeoCoord, int](CompareGeoCoord)

	// same numeric value, different text: two distinct keys
	a := mustCoord(t, "34.05", "-118.4")
	b := mustCoord(t, "34.050", "-118.4")
	m.Associate(a, 1)
	m.Associate(b, 2)

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 1, *m.Find(a))
	assert.Equal(t, 2, *m.Find(b))
}

func TestOrderedMapFindPointerMutates(t *testing.T) {
	m := NewOrderedMapOf[int, []int]()
	m.Associate(5, []int{1})

	v := m.Find(5)
	*v = append(*v, 2)
	for i := 0; i < 100; i++ {
		m.Associate(i+10, nil)
	}

	assert.Equal(t, []int{1, 2}, *m.Find(5))
	assert.Equal(t, []int{1, 2}, *v)
}

func TestOrderedMapForEachInOrder(t *testing.T) {
	m := NewOrderedMapOf[int, string]()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 60} {
		m.Associate(k, fmt.Sprintf("v%d", k))
	}

	keys := []int{}
	m.ForEach(func(k int, v *string) bool {
		keys = append(keys, k)
		assert.Equal(t, fmt.Sprintf("v%d", k), *v)
		return true
	})
	assert.Equal(t, []int{10, 20, 30, 50, 60, 70, 80, 90}, keys)

	keys = keys[:0]
	m.ForEach(func(k int, v *string) bool {
		keys = append(keys, k)
		return len(keys) < 3
	})
	assert.Equal(t, []int{10, 20, 30}, keys)
}

func TestOrderedMapClear(t *testing.T) {
	m := NewOrderedMapOf[int, int]()
	for i := 0; i < 10; i++ {
		m.Associate(i, i*i)
	}
	require.Equal(t, 10, m.Size())

	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.Depth())
	assert.Nil(t, m.Find(3))

	m.Associate(3, 1)
	assert.Equal(t, 1, *m.Find(3))
	assert.Equal(t, 1, m.Size())
}

func TestOrderedMapDegenerateTree(t *testing.T) {
	// sorted inserts build a list shaped tree; nothing should recurse on it.
	const n = 5000
	m := NewOrderedMapOf[int, int]()
	for i := 0; i < n; i++ {
		m.Associate(i, i)
	}

	assert.Equal(t, n, m.Size())
	assert.Equal(t, n, m.Depth())
	assert.Equal(t, n-1, *m.Find(n - 1))

	count := 0
	m.ForEach(func(k int, v *int) bool {
		count++
		return true
	})
	assert.Equal(t, n, count)

	m.Clear()
	assert.Equal(t, 0, m.Size())
}
