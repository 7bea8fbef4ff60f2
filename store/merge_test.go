package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name  string
	Age   int
	Tags  map[string]string
	Items []string
}

func TestMergeStruct(t *testing.T) {
	current := profile{Name: "alice", Age: 30, Tags: map[string]string{"role": "admin"}}

	next, err := Merge(current, profile{Age: 31, Tags: map[string]string{"team": "core"}})
	require.NoError(t, err)

	assert.Equal(t, "alice", next.Name)
	assert.Equal(t, 31, next.Age)
	assert.Equal(t, map[string]string{"role": "admin", "team": "core"}, next.Tags)

	// the previous state must not see the merge
	assert.Equal(t, 30, current.Age)
	assert.Equal(t, map[string]string{"role": "admin"}, current.Tags)
}

func TestMergeStructZeroFieldsAreUnset(t *testing.T) {
	next, err := Merge(profile{Name: "bob", Age: 40}, profile{Age: 0})
	require.NoError(t, err)
	assert.Equal(t, profile{Name: "bob", Age: 40}, next)
}

func TestMergeMapAssignsEveryKey(t *testing.T) {
	current := map[string]any{"count": 3, "name": "c"}

	next, err := Merge(current, map[string]any{"count": 0, "extra": true})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"count": 0, "name": "c", "extra": true}, next)
	assert.Equal(t, map[string]any{"count": 3, "name": "c"}, current)
}

func TestMergeMapNilSides(t *testing.T) {
	var empty map[string]int

	next, err := Merge(empty, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, next)

	next, err = Merge(map[string]int{"a": 1}, empty)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, next)
}

func TestMergePointerToStruct(t *testing.T) {
	current := &profile{Name: "carol", Age: 20}

	next, err := Merge(current, &profile{Name: "caroline"})
	require.NoError(t, err)

	assert.Equal(t, &profile{Name: "caroline", Age: 20}, next)
	assert.NotSame(t, current, next)
	assert.Equal(t, "carol", current.Name)

	same, err := Merge(current, nil)
	require.NoError(t, err)
	assert.Same(t, current, same)

	fresh, err := Merge[*profile](nil, &profile{Name: "dave"})
	require.NoError(t, err)
	assert.Equal(t, "dave", fresh.Name)
}

func TestMergeScalarReplaces(t *testing.T) {
	n, err := Merge(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	s, err := Merge("old", "new")
	require.NoError(t, err)
	assert.Equal(t, "new", s)
}
