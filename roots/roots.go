// Package roots indexes which single characters (roots) occur in which
// corpus words (compounds) and ranks roots by how many compounds they
// generate.
package roots

import (
	"sort"

	"github.com/dashtaisen/chinese-roots/corpus"
)

type Productivity struct {
	Hanzi     string
	Compounds int
}

type Index struct {
	hanzi    []string
	wordTags map[string][]string
	tagWords map[string][]string

	compounds map[string][]string
	ranking   []Productivity
}

// New builds every derived structure up front; the index is immutable and
// safe for concurrent readers afterwards.
func New(c *corpus.Corpus) *Index {
	types := wordTypes(c.Words())

	ix := &Index{
		hanzi:     hanzi(types),
		compounds: compoundMap(types),
	}
	ix.wordTags, ix.tagWords = tagMaps(c.TaggedWords())
	ix.ranking = ranking(ix.compounds)

	return ix
}

// wordTypes returns the sorted unique word types of a token sequence.
func wordTypes(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	types := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		types = append(types, w)
	}
	sort.Strings(types)
	return types
}

func hanzi(types []string) []string {
	seen := make(map[rune]struct{}, 4096)
	h := make([]string, 0, 4096)
	for _, w := range types {
		for _, c := range w {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			h = append(h, string(c))
		}
	}
	return h
}

func compoundMap(types []string) map[string][]string {
	m := make(map[string][]string, 4096)
	for _, w := range types {
		inWord := make(map[rune]struct{}, 4)
		for _, c := range w {
			if _, ok := inWord[c]; ok {
				continue
			}
			inWord[c] = struct{}{}
			m[string(c)] = append(m[string(c)], w)
		}
	}
	return m
}

func tagMaps(tagged []corpus.TaggedWord) (map[string][]string, map[string][]string) {
	wt := make(map[string][]string, len(tagged))
	tw := make(map[string][]string, 64)

	// A word can be attested with the same tag many times; only the unique
	// (word, tag) pairs count, in first-attestation order.
	pairs := make(map[corpus.TaggedWord]struct{}, len(tagged))
	for _, p := range tagged {
		if _, ok := pairs[p]; ok {
			continue
		}
		pairs[p] = struct{}{}
		wt[p.Word] = append(wt[p.Word], p.Tag)
		tw[p.Tag] = append(tw[p.Tag], p.Word)
	}

	return wt, tw
}

func ranking(compounds map[string][]string) []Productivity {
	r := make([]Productivity, 0, len(compounds))
	for h, c := range compounds {
		r = append(r, Productivity{Hanzi: h, Compounds: len(c)})
	}
	sort.Slice(r, func(i, j int) bool {
		if r[i].Compounds == r[j].Compounds {
			return r[i].Hanzi < r[j].Hanzi
		}
		return r[i].Compounds > r[j].Compounds
	})
	return r
}

// Hanzi returns every distinct character observed across word types, in
// order of first appearance over the sorted type list.
func (ix *Index) Hanzi() []string { return ix.hanzi }

// Tags returns the distinct tags a word is attested with; nil for an
// unknown word.
func (ix *Index) Tags(word string) []string { return ix.wordTags[word] }

// WordsByTag returns the distinct words attested with tag; nil for an
// unknown tag.
func (ix *Index) WordsByTag(tag string) []string { return ix.tagWords[tag] }

// WordTagMap returns the full word → tags mapping.
func (ix *Index) WordTagMap() map[string][]string { return ix.wordTags }

// TagWordMap returns the full tag → words mapping.
func (ix *Index) TagWordMap() map[string][]string { return ix.tagWords }

// Compounds returns the distinct words containing the given character, a
// one-character word indexing to itself.
func (ix *Index) Compounds(hanzi string) []string { return ix.compounds[hanzi] }

// CompoundMap returns the full character → compounds mapping.
func (ix *Index) CompoundMap() map[string][]string { return ix.compounds }

// Ranking returns (character, compound count) pairs sorted by descending
// count, ties broken lexicographically.
func (ix *Index) Ranking() []Productivity { return ix.ranking }
