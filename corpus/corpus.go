// Package corpus holds pre-segmented (and optionally POS-tagged) Chinese
// text and exposes the three views the index packages consume: word tokens,
// (word, tag) pairs and sentences.
package corpus

type TaggedWord struct {
	Word string
	Tag  string
}

type Corpus struct {
	sents  [][]string
	tagged []TaggedWord
}

// New builds a corpus from sentence and tagged-token sequences. Either may
// be empty; a plain corpus simply has no tagged view.
func New(sents [][]string, tagged []TaggedWord) *Corpus {
	return &Corpus{sents: sents, tagged: tagged}
}

// Words returns every word token in corpus order, duplicates included.
func (c *Corpus) Words() []string {
	n := 0
	for _, s := range c.sents {
		n += len(s)
	}
	w := make([]string, 0, n)
	for _, s := range c.sents {
		w = append(w, s...)
	}
	return w
}

func (c *Corpus) TaggedWords() []TaggedWord { return c.tagged }

func (c *Corpus) Sents() [][]string { return c.sents }
