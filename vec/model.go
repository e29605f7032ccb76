// Package vec measures semantic cohesion among words sharing a root
// character, using word embeddings trained over corpus sentences.
package vec

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ynqa/wego/pkg/embedding"
	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"
)

var (
	// ErrNotInVocab is returned when a similarity query involves a word the
	// model has no vector for.
	ErrNotInVocab = errors.New("word not in vocabulary")

	// ErrNoCandidates is returned when an average is requested over an
	// empty compound-similarity list.
	ErrNoCandidates = errors.New("no compounds to average")
)

// Model is the embedding oracle the index runs on: a vocabulary of word
// types and a pairwise cosine similarity over them.
type Model interface {
	Vocab() []string
	Has(word string) bool
	Similarity(a, b string) (float64, error)
}

type embeddings struct {
	words []string
	vecs  map[string][]float64
	norms map[string]float64
}

func (e *embeddings) Vocab() []string { return e.words }

func (e *embeddings) Has(word string) bool {
	_, ok := e.vecs[word]
	return ok
}

func (e *embeddings) Similarity(a, b string) (float64, error) {
	va, ok := e.vecs[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrNotInVocab)
	}
	vb, ok := e.vecs[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrNotInVocab)
	}

	na, nb := e.norms[a], e.norms[b]
	if na == 0 || nb == 0 {
		return 0, nil
	}

	var dot float64
	for i := range va {
		dot += va[i] * vb[i]
	}
	return dot / (na * nb), nil
}

// Train runs word2vec over pre-segmented sentences and returns the learned
// model. It fails, with nothing half-built, on an empty corpus or a trainer
// error.
func Train(sents [][]string, o Options) (Model, error) {
	tokens := 0
	for _, s := range sents {
		tokens += len(s)
	}
	if tokens == 0 {
		return nil, errors.New("train: empty corpus")
	}

	lines := make([]string, len(sents))
	for i, s := range sents {
		lines[i] = strings.Join(s, " ")
	}

	m, err := word2vec.NewForOptions(o.word2vec())
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if err := m.Train(bytes.NewReader([]byte(strings.Join(lines, "\n")))); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	var buf bytes.Buffer
	if err := m.Save(&buf, vector.Agg); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	e := &embeddings{
		words: make([]string, 0, len(embs)),
		vecs:  make(map[string][]float64, len(embs)),
		norms: make(map[string]float64, len(embs)),
	}
	for _, emb := range embs {
		if _, ok := e.vecs[emb.Word]; ok {
			continue
		}
		var sq float64
		for _, v := range emb.Vector {
			sq += v * v
		}
		e.words = append(e.words, emb.Word)
		e.vecs[emb.Word] = emb.Vector
		e.norms[emb.Word] = math.Sqrt(sq)
	}
	sort.Strings(e.words)

	return e, nil
}
