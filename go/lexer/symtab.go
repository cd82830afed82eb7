/*
 * C-like Lexer - Symbol Table
 *
 * Maps each distinct non-keyword identifier to a stable numeric id and an
 * occurrence counter. Ids are assigned in first-occurrence order starting
 * at 1 and are never reused; the table only grows during a scan. One table
 * belongs to exactly one scan, so no locking is needed.
 */

package lexer

// Symbol is one symbol table entry.
type Symbol struct {
	Name  string // identifier spelling
	ID    int    // assigned id, 1-based in first-occurrence order
	Count int    // number of IDENTIFIER tokens emitted for Name
}

// SymbolTable tracks user identifiers for a single scan.
type SymbolTable struct {
	byName  map[string]*Symbol
	ordered []*Symbol
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// LookupOrInsert returns the id for name, inserting it with the next
// sequential id on first sight. Every call counts one occurrence.
func (st *SymbolTable) LookupOrInsert(name string) int {
	if sym, ok := st.byName[name]; ok {
		sym.Count++
		return sym.ID
	}
	sym := &Symbol{Name: name, ID: len(st.ordered) + 1, Count: 1}
	st.byName[name] = sym
	st.ordered = append(st.ordered, sym)
	return sym.ID
}

// Lookup returns the entry for name without counting an occurrence.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	if sym, ok := st.byName[name]; ok {
		return *sym, true
	}
	return Symbol{}, false
}

// Symbols returns a copy of all entries ordered by ascending id, which is
// first-occurrence order.
func (st *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, len(st.ordered))
	for i, sym := range st.ordered {
		out[i] = *sym
	}
	return out
}

// Len returns the number of distinct identifiers seen.
func (st *SymbolTable) Len() int {
	return len(st.ordered)
}
