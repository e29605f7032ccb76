package vec

import (
	"fmt"
	"sort"
)

type Pair struct {
	Word  string
	Score float64
}

// Index maps root characters to the vocabulary words containing them and
// aggregates pairwise similarities over that mapping.
type Index struct {
	model     Model
	vocab     []string
	compounds map[string][]string
}

// NewIndex builds the root → compound mapping over the model vocabulary.
func NewIndex(m Model) *Index {
	vocab := append([]string(nil), m.Vocab()...)
	sort.Strings(vocab)

	compounds := make(map[string][]string, 4096)
	for _, w := range vocab {
		inWord := make(map[rune]struct{}, 4)
		for _, c := range w {
			if _, ok := inWord[c]; ok {
				continue
			}
			inWord[c] = struct{}{}
			compounds[string(c)] = append(compounds[string(c)], w)
		}
	}

	return &Index{model: m, vocab: vocab, compounds: compounds}
}

func (ix *Index) Model() Model { return ix.model }

// CompoundMap returns the character → vocabulary-words mapping.
func (ix *Index) CompoundMap() map[string][]string { return ix.compounds }

// CompoundSimilarities scores every vocabulary word sharing at least one
// character with query against the query, highest first. The query itself
// shares its own roots and so appears in the result. An out-of-vocabulary
// query is an error, not an empty result.
func (ix *Index) CompoundSimilarities(query string) ([]Pair, error) {
	if !ix.model.Has(query) {
		return nil, fmt.Errorf("%q: %w", query, ErrNotInVocab)
	}

	seen := make(map[string]struct{}, 64)
	cands := make([]string, 0, 64)
	for _, c := range query {
		for _, w := range ix.compounds[string(c)] {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			cands = append(cands, w)
		}
	}

	sims := make([]Pair, 0, len(cands))
	for _, w := range cands {
		s, err := ix.model.Similarity(query, w)
		if err != nil {
			return nil, err
		}
		sims = append(sims, Pair{Word: w, Score: s})
	}
	sortPairs(sims)

	return sims, nil
}

// AverageCompoundSimilarity is the arithmetic mean of CompoundSimilarities.
func (ix *Index) AverageCompoundSimilarity(query string) (float64, error) {
	sims, err := ix.CompoundSimilarities(query)
	if err != nil {
		return 0, err
	}
	if len(sims) == 0 {
		return 0, fmt.Errorf("%q: %w", query, ErrNoCandidates)
	}

	var sum float64
	for _, s := range sims {
		sum += s.Score
	}
	return sum / float64(len(sims)), nil
}

// RankedAverages returns (word, average compound similarity) for every
// vocabulary word with at least minEntries candidates, highest average
// first. minEntries suppresses words whose only compound is themselves.
func (ix *Index) RankedAverages(minEntries int) ([]Pair, error) {
	out := make([]Pair, 0, len(ix.vocab))
	for _, w := range ix.vocab {
		sims, err := ix.CompoundSimilarities(w)
		if err != nil {
			return nil, err
		}
		if len(sims) < minEntries {
			continue
		}

		var sum float64
		for _, s := range sims {
			sum += s.Score
		}
		out = append(out, Pair{Word: w, Score: sum / float64(len(sims))})
	}
	sortPairs(out)

	return out, nil
}

// MostConsistent returns every word tied at the highest average compound
// similarity, among words with at least two candidates.
func (ix *Index) MostConsistent() ([]Pair, error) {
	ranked, err := ix.RankedAverages(2)
	if err != nil || len(ranked) == 0 {
		return nil, err
	}
	return ties(ranked, ranked[0].Score), nil
}

// LeastConsistent returns every word tied at the lowest average compound
// similarity, among words with at least two candidates.
func (ix *Index) LeastConsistent() ([]Pair, error) {
	ranked, err := ix.RankedAverages(2)
	if err != nil || len(ranked) == 0 {
		return nil, err
	}
	return ties(ranked, ranked[len(ranked)-1].Score), nil
}

func ties(ranked []Pair, score float64) []Pair {
	out := make([]Pair, 0, 1)
	for _, p := range ranked {
		if p.Score == score {
			out = append(out, p)
		}
	}
	return out
}

func sortPairs(p []Pair) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Score == p[j].Score {
			return p[i].Word < p[j].Word
		}
		return p[i].Score > p[j].Score
	})
}
