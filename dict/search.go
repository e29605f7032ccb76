package dict

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/dashtaisen/chinese-roots/cedict"
)

// Search matches headword keys against a query with at most one wildcard
// position and returns the entry list of every matching key, keys in sorted
// order:
//
//	建*   keys starting with 建
//	*建   keys ending with 建
//	*建*  keys containing 建 neither at the start nor at the end
//	建    same as 建* (a bare query is a prefix query)
func (ix *Index) Search(query string) [][]cedict.Entry {
	keys := ix.matchKeys(query)
	out := make([][]cedict.Entry, len(keys))
	for i, k := range keys {
		out[i] = ix.entries[k]
	}
	return out
}

// Compounds returns only the headword of the first entry per Search match,
// flattened.
func (ix *Index) Compounds(query string) []string {
	matches := ix.Search(query)
	out := make([]string, 0, len(matches))
	for _, es := range matches {
		if len(es) != 0 {
			out = append(out, es[0].Trad)
		}
	}
	return out
}

func (ix *Index) matchKeys(query string) []string {
	switch {
	case strings.HasPrefix(query, "*") && strings.HasSuffix(query, "*"):
		q := strings.TrimSuffix(strings.TrimPrefix(query, "*"), "*")
		out := make([]string, 0, 16)
		for _, k := range ix.keys {
			if strings.Contains(k, q) && !strings.HasPrefix(k, q) && !strings.HasSuffix(k, q) {
				out = append(out, k)
			}
		}
		return out

	case strings.HasPrefix(query, "*"):
		q := strings.TrimPrefix(query, "*")
		out := make([]string, 0, 16)
		for _, k := range ix.keys {
			if strings.HasSuffix(k, q) {
				out = append(out, k)
			}
		}
		return out

	case strings.HasSuffix(query, "*"):
		return ix.prefixKeys(strings.TrimSuffix(query, "*"))

	default:
		return ix.prefixKeys(query)
	}
}

func (ix *Index) prefixKeys(q string) []string {
	out := make([]string, 0, 16)
	ix.trie.VisitSubtree(patricia.Prefix(q), func(prefix patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(prefix))
		return nil
	})
	sort.Strings(out)
	return out
}
