package symbol

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAdd(t *testing.T) {
	items := []struct {
		id   uint32
		text string
	}{
		{1, "abcdefghijklmnopqrstuvwxyz"},
		{2, "sym1"},
		{3, "sym2"},
		{2, "sym1"},
		{2, "SYM1"},
		{4, "A"},
		{4, "a"},
		{5, "symbol3"},
		{6, "SYMBOL4"},
		{7, "symbol5"},
		{8, "sym6"},
		{9, "sym7"},
		{10, "sym8"},
		{11, "sym9"},
		{2, "syM1"},
	}
	var tab Table
	for i, item := range items {
		id, err := tab.Add(item.text)
		require.NoError(t, err, "%d: Add(%q)", i, item.text)
		assert.Equal(t, item.id, id, "%d: Add(%q)", i, item.text)
	}
	assert.Equal(t, 11, tab.Len())
}

func TestTableTooLong(t *testing.T) {
	var tab Table
	_, err := tab.Add(strings.Repeat("a", MaxLen+1))
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, 0, tab.Len())

	id, err := tab.Add(strings.Repeat("a", MaxLen))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
}

// Growing the table must move slots around without renumbering any symbol.
func TestTableIdsStableAcrossGrowth(t *testing.T) {
	var tab Table
	id, err := tab.Add("first")
	require.NoError(t, err)
	require.Equal(t, uint32(1), id)

	for i := 0; i < 200; i++ {
		got, err := tab.Add(fmt.Sprintf("filler%d", i))
		require.NoError(t, err)
		assert.Equal(t, uint32(i+2), got)
	}

	// Every earlier symbol still resolves to its original id.
	id, err = tab.Add("FIRST")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
	for i := 0; i < 200; i++ {
		got, err := tab.Add(fmt.Sprintf("FILLER%d", i))
		require.NoError(t, err)
		assert.Equal(t, uint32(i+2), got)
	}
	assert.Equal(t, 201, tab.Len())
}

func TestTableReAddDoesNotGrow(t *testing.T) {
	var tab Table
	_, err := tab.Add("stable")
	require.NoError(t, err)
	size := len(tab.arr)
	for i := 0; i < 50; i++ {
		id, err := tab.Add("stable")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), id)
	}
	assert.Equal(t, size, len(tab.arr))
	assert.Equal(t, 1, tab.Len())
}

func TestHashDeterministic(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "abcd", "abcde", "oscillator"}
	for _, in := range inputs {
		assert.Equal(t, hash([]byte(in)), hash([]byte(in)), "hash(%q)", in)
	}
	assert.NotEqual(t, hash([]byte("a")), hash([]byte("b")))
}
