/*
 * C-like Lexer - Keyword Recognition
 *
 * The keyword set is closed and case-sensitive: a lexeme either is one of
 * the 24 reserved words below or it is a user identifier. Lookup goes
 * through a map built once at init, with a length fast path so long
 * identifiers never hash.
 */

package lexer

import (
	"sort"
	"strings"
)

// KeywordCategory groups the reserved words by their role in the language.
type KeywordCategory int

const (
	// TypeKeyword - base type names (int, float, double, char, void).
	TypeKeyword KeywordCategory = iota

	// ControlKeyword - control flow (if, else, while, for, return, switch,
	// case, default, break, continue, goto).
	ControlKeyword

	// StorageKeyword - storage class and type qualifiers (const, static,
	// extern, typedef).
	StorageKeyword

	// CompositeKeyword - aggregate type introducers (struct, union, enum).
	CompositeKeyword

	// OperatorKeyword - keywords acting as operators (sizeof).
	OperatorKeyword
)

// String returns the lowercase category name.
func (kc KeywordCategory) String() string {
	switch kc {
	case TypeKeyword:
		return "type"
	case ControlKeyword:
		return "control"
	case StorageKeyword:
		return "storage"
	case CompositeKeyword:
		return "composite"
	case OperatorKeyword:
		return "operator"
	default:
		return "unknown"
	}
}

// KeywordInfo describes one reserved word.
type KeywordInfo struct {
	Name     string          // keyword spelling (the only valid casing)
	Category KeywordCategory // role group
}

// Keywords is the full reserved-word list. Order within each group follows
// the language reference; the recognizer itself is order-independent.
var Keywords = []KeywordInfo{
	{"int", TypeKeyword},
	{"float", TypeKeyword},
	{"double", TypeKeyword},
	{"char", TypeKeyword},
	{"void", TypeKeyword},

	{"if", ControlKeyword},
	{"else", ControlKeyword},
	{"while", ControlKeyword},
	{"for", ControlKeyword},
	{"return", ControlKeyword},
	{"switch", ControlKeyword},
	{"case", ControlKeyword},
	{"default", ControlKeyword},
	{"break", ControlKeyword},
	{"continue", ControlKeyword},
	{"goto", ControlKeyword},

	{"struct", CompositeKeyword},
	{"union", CompositeKeyword},
	{"enum", CompositeKeyword},

	{"typedef", StorageKeyword},
	{"const", StorageKeyword},
	{"static", StorageKeyword},
	{"extern", StorageKeyword},

	{"sizeof", OperatorKeyword},
}

// keywordLookupMap provides O(1) keyword lookup by exact spelling.
var keywordLookupMap map[string]*KeywordInfo

func init() {
	keywordLookupMap = make(map[string]*KeywordInfo, len(Keywords))
	for i := range Keywords {
		keywordLookupMap[Keywords[i].Name] = &Keywords[i]
	}
}

// maxKeywordLength is the length of the longest keyword ("continue").
// Identifiers longer than this can never be keywords, so lookup skips the
// map probe entirely.
const maxKeywordLength = 8

// LookupKeyword returns the keyword entry for name, or nil if name is not a
// reserved word. Matching is case-sensitive: "Int" is an identifier.
func LookupKeyword(name string) *KeywordInfo {
	if len(name) > maxKeywordLength {
		return nil
	}
	return keywordLookupMap[name]
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	return LookupKeyword(name) != nil
}

// KeywordNames returns all keyword spellings in sorted order.
func KeywordNames() []string {
	names := make([]string, len(Keywords))
	for i, kw := range Keywords {
		names[i] = kw.Name
	}
	sort.Strings(names)
	return names
}

// ParseKeywordCategory resolves a category name as printed by
// KeywordCategory.String. Matching is case-insensitive.
func ParseKeywordCategory(name string) (KeywordCategory, bool) {
	switch strings.ToLower(name) {
	case "type":
		return TypeKeyword, true
	case "control":
		return ControlKeyword, true
	case "storage":
		return StorageKeyword, true
	case "composite":
		return CompositeKeyword, true
	case "operator":
		return OperatorKeyword, true
	}
	return 0, false
}

// KeywordsByCategory returns the keywords belonging to one category, in
// declaration order.
func KeywordsByCategory(category KeywordCategory) []KeywordInfo {
	var result []KeywordInfo
	for _, kw := range Keywords {
		if kw.Category == category {
			result = append(result, kw)
		}
	}
	return result
}
