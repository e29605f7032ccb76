// Package dict indexes CC-CEDICT entries by headword and answers wildcard
// searches and gloss-marker classifications over them.
package dict

import (
	"sort"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/dashtaisen/chinese-roots/cedict"
)

type Index struct {
	entries map[string][]cedict.Entry
	keys    []string
	hanzi   []string
	maxLen  int

	trie *patricia.Trie
}

// New indexes entries by traditional headword. Homographs stay separate
// entries under one key, in file order.
func New(entries []cedict.Entry) *Index {
	ix := &Index{
		entries: make(map[string][]cedict.Entry, len(entries)),
		hanzi:   make([]string, 0, 4096),
		trie:    patricia.NewTrie(),
	}

	for _, e := range entries {
		ix.entries[e.Trad] = append(ix.entries[e.Trad], e)
		if utf8.RuneCountInString(e.Trad) == 1 && len(ix.entries[e.Trad]) == 1 {
			ix.hanzi = append(ix.hanzi, e.Trad)
		}
	}

	ix.keys = make([]string, 0, len(ix.entries))
	for k := range ix.entries {
		ix.keys = append(ix.keys, k)
		ix.trie.Set(patricia.Prefix(k), struct{}{})
		if n := utf8.RuneCountInString(k); n > ix.maxLen {
			ix.maxLen = n
		}
	}
	sort.Strings(ix.keys)

	return ix
}

// Len returns the number of distinct headwords.
func (ix *Index) Len() int { return len(ix.keys) }

// Hanzi returns the single-character headwords in file order.
func (ix *Index) Hanzi() []string { return ix.hanzi }

// MaxEntryLen is the character count of the longest headword.
func (ix *Index) MaxEntryLen() int { return ix.maxLen }

// Entries returns the entries under a headword, nil when absent.
func (ix *Index) Entries(headword string) []cedict.Entry { return ix.entries[headword] }

// Keys returns the sorted headword keys.
func (ix *Index) Keys() []string { return ix.keys }

// Idioms returns every headword with "(idiom)" in some gloss.
func (ix *Index) Idioms() []string {
	return ix.marked(ix.keys, "(idiom)")
}

// Variants returns every single-character headword glossed as a variant
// (archaic or alternate character form).
func (ix *Index) Variants() []string {
	return ix.marked(ix.hanzi, "variant")
}

// Gugja returns every single-character headword glossed as gugja (Korean
// hanja usage).
func (ix *Index) Gugja() []string {
	return ix.marked(ix.hanzi, "gugja")
}

// Nonrare returns the hanzi inventory minus variants and gugja.
func (ix *Index) Nonrare() []string {
	rare := make(map[string]struct{}, 256)
	for _, h := range ix.Variants() {
		rare[h] = struct{}{}
	}
	for _, h := range ix.Gugja() {
		rare[h] = struct{}{}
	}

	out := make([]string, 0, len(ix.hanzi))
	for _, h := range ix.hanzi {
		if _, ok := rare[h]; !ok {
			out = append(out, h)
		}
	}
	return out
}

func (ix *Index) marked(keys []string, marker string) []string {
	out := make([]string, 0, 64)
	for _, k := range keys {
		for _, e := range ix.entries[k] {
			if e.HasGloss(marker) {
				out = append(out, k)
				break
			}
		}
	}
	return out
}
