/*
 * C-like Lexer - Symbol Table Tests
 */

package lexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableInsertAndCount(t *testing.T) {
	st := NewSymbolTable()
	require.Equal(t, 0, st.Len())

	assert.Equal(t, 1, st.LookupOrInsert("x"))
	assert.Equal(t, 2, st.LookupOrInsert("y"))
	assert.Equal(t, 1, st.LookupOrInsert("x"))
	assert.Equal(t, 1, st.LookupOrInsert("x"))
	assert.Equal(t, 3, st.LookupOrInsert("z"))
	require.Equal(t, 3, st.Len())

	want := []Symbol{
		{Name: "x", ID: 1, Count: 3},
		{Name: "y", ID: 2, Count: 1},
		{Name: "z", ID: 3, Count: 1},
	}
	assert.Equal(t, want, st.Symbols())
}

func TestSymbolTableLookup(t *testing.T) {
	st := NewSymbolTable()
	st.LookupOrInsert("alpha")

	sym, ok := st.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, Symbol{Name: "alpha", ID: 1, Count: 1}, sym)

	_, ok = st.Lookup("missing")
	assert.False(t, ok)

	// Lookup must not bump the occurrence count.
	st.Lookup("alpha")
	sym, _ = st.Lookup("alpha")
	assert.Equal(t, 1, sym.Count)
}

func TestSymbolTableIDsAreDense(t *testing.T) {
	st := NewSymbolTable()
	for i := 0; i < 100; i++ {
		st.LookupOrInsert(fmt.Sprintf("name_%d", i))
	}

	symbols := st.Symbols()
	require.Len(t, symbols, 100)
	for i, sym := range symbols {
		assert.Equal(t, i+1, sym.ID, "ids must be dense and ordered")
	}
}

func TestSymbolTableSnapshotIsolated(t *testing.T) {
	st := NewSymbolTable()
	st.LookupOrInsert("a")

	snapshot := st.Symbols()
	snapshot[0].Count = 99
	snapshot[0].Name = "mutated"

	sym, ok := st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, sym.Count)
	assert.Equal(t, "a", sym.Name)
}
