package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/template"

	"github.com/kydenul/log"

	"github.com/dashtaisen/chinese-roots/cedict"
	"github.com/dashtaisen/chinese-roots/corpus"
	"github.com/dashtaisen/chinese-roots/dict"
	"github.com/dashtaisen/chinese-roots/roots"
	"github.com/dashtaisen/chinese-roots/vec"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

const master = `{{- if .Corpus }}Corpus
  word tokens:     {{ .Corpus.Tokens }}
  word types:      {{ .Corpus.Types }}
  sentences:       {{ .Corpus.Sentences }}
  distinct hanzi:  {{ .Corpus.Hanzi }}
{{ if .Corpus.TagSamples }}  sample words per tag:
{{ range .Corpus.TagSamples }}    {{ .Tag }}: {{ range .Words }}{{ . }} {{ end }}
{{ end }}{{ end -}}
{{ if .Corpus.MostTagged }}  most ambiguous words ({{ .Corpus.MaxTags }} tags): {{ range .Corpus.MostTagged }}{{ . }} {{ end }}
{{ end -}}
{{ if .Corpus.Tag }}  words tagged {{ .Corpus.Tag }}: {{ range .Corpus.TagWords }}{{ . }} {{ end }}
{{ end -}}
  most productive roots:
{{ range .Corpus.Productivity }}    {{ .Hanzi }} {{ .Compounds }}
{{ end }}{{ end -}}
{{- if .Vec }}Embeddings
  vocabulary:      {{ .Vec.Vocab }}
{{ if .Vec.Query }}  words sharing a root with {{ .Vec.Query }}:
{{ range .Vec.Sims }}    {{ .Word }} {{ printf "%.4f" .Score }}
{{ end }}  average similarity for {{ .Vec.Query }}: {{ printf "%.4f" .Vec.Avg }}
{{ end }}  most internally consistent:
{{ range .Vec.Top }}    {{ .Word }} {{ printf "%.4f" .Score }}
{{ end }}  least internally consistent:
{{ range .Vec.Bottom }}    {{ .Word }} {{ printf "%.4f" .Score }}
{{ end }}{{ end -}}
{{- if .Dict }}CC-CEDICT
  headwords:       {{ .Dict.Headwords }}
  distinct hanzi:  {{ .Dict.Hanzi }}
  non-rare hanzi:  {{ .Dict.Nonrare }}
  idioms:          {{ .Dict.Idioms }}
  longest key:     {{ .Dict.MaxLen }} {{ range .Dict.Longest }}{{ . }} {{ end }}
{{ if .Dict.Query }}  compounds {{ .Dict.Query }}*: {{ range .Dict.Prefix }}{{ . }} {{ end }}
  compounds *{{ .Dict.Query }}: {{ range .Dict.Suffix }}{{ . }} {{ end }}
  compounds *{{ .Dict.Query }}*: {{ range .Dict.Interior }}{{ . }} {{ end }}
{{ end }}{{ end -}}
`

type tagSample struct {
	Tag   string
	Words []string
}

type corpusStats struct {
	Tokens, Types, Sentences, Hanzi int
	TagSamples                      []tagSample
	MostTagged                      []string
	MaxTags                         int
	Tag                             string
	TagWords                        []string
	Productivity                    []roots.Productivity
}

type vecStats struct {
	Vocab       int
	Query       string
	Sims        []vec.Pair
	Avg         float64
	Top, Bottom []vec.Pair
}

type dictStats struct {
	Headwords, Hanzi, Nonrare, Idioms int
	MaxLen                            int
	Longest                           []string
	Query                             string
	Prefix, Suffix, Interior          []string
}

type report struct {
	Corpus *corpusStats
	Vec    *vecStats
	Dict   *dictStats
}

func headStrings(s []string, n int) []string {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func headPairs(s []vec.Pair, n int) []vec.Pair {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func tailPairs(s []vec.Pair, n int) []vec.Pair {
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

func loadCorpus(path string, plain bool) (*corpus.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if plain {
		return corpus.DecodePlain(f)
	}
	return corpus.DecodeTagged(f)
}

func corpusReport(c *corpus.Corpus, tag string, n int) *corpusStats {
	ix := roots.New(c)

	words := c.Words()
	types := make(map[string]struct{}, len(words))
	for _, w := range words {
		types[w] = struct{}{}
	}

	st := &corpusStats{
		Tokens:       len(words),
		Types:        len(types),
		Sentences:    len(c.Sents()),
		Hanzi:        len(ix.Hanzi()),
		Tag:          tag,
		TagWords:     headStrings(ix.WordsByTag(tag), n),
		Productivity: ix.Ranking(),
	}
	if len(st.Productivity) > n {
		st.Productivity = st.Productivity[:n]
	}

	tags := make([]string, 0, len(ix.TagWordMap()))
	for t := range ix.TagWordMap() {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	for _, t := range headStrings(tags, n) {
		st.TagSamples = append(st.TagSamples, tagSample{
			Tag:   t,
			Words: headStrings(ix.WordsByTag(t), 2),
		})
	}

	for w, ts := range ix.WordTagMap() {
		switch {
		case len(ts) > st.MaxTags:
			st.MaxTags = len(ts)
			st.MostTagged = []string{w}
		case len(ts) == st.MaxTags:
			st.MostTagged = append(st.MostTagged, w)
		}
	}
	sort.Strings(st.MostTagged)

	return st
}

func vecReport(logger log.Logger, c *corpus.Corpus, o vec.Options, query string, min, n int) (*vecStats, error) {
	logger.Infof("training word2vec over %d sentences", len(c.Sents()))
	m, err := vec.Train(c.Sents(), o)
	if err != nil {
		return nil, err
	}
	ix := vec.NewIndex(m)
	logger.Infof("trained, vocabulary of %d words", len(m.Vocab()))

	st := &vecStats{Vocab: len(m.Vocab())}

	if query != "" {
		sims, err := ix.CompoundSimilarities(query)
		switch {
		case errors.Is(err, vec.ErrNotInVocab):
			logger.Warnf("%s not in vocabulary, skipping similarity report", query)
		case err != nil:
			return nil, err
		default:
			st.Query = query
			st.Sims = headPairs(sims, n)
			if st.Avg, err = ix.AverageCompoundSimilarity(query); err != nil {
				return nil, err
			}
		}
	}

	ranked, err := ix.RankedAverages(min)
	if err != nil {
		return nil, err
	}
	st.Top = headPairs(ranked, n)
	st.Bottom = tailPairs(ranked, n)

	return st, nil
}

func dictReport(path, query string, n int) (*dictStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := cedict.DecodeEntries(f)
	if err != nil {
		return nil, err
	}
	ix := dict.New(entries)

	st := &dictStats{
		Headwords: ix.Len(),
		Hanzi:     len(ix.Hanzi()),
		Nonrare:   len(ix.Nonrare()),
		Idioms:    len(ix.Idioms()),
		MaxLen:    ix.MaxEntryLen(),
		Query:     query,
	}
	for _, k := range ix.Keys() {
		if len([]rune(k)) == ix.MaxEntryLen() {
			st.Longest = append(st.Longest, k)
		}
	}
	if query != "" {
		st.Prefix = headStrings(ix.Compounds(query+"*"), n)
		st.Suffix = headStrings(ix.Compounds("*"+query), n)
		st.Interior = headStrings(ix.Compounds("*"+query+"*"), n)
	}

	return st, nil
}

func main() {
	var (
		corpusPath = flag.String("corpus", "", "tagged corpus file (word<TAB>tag per line, blank line between sentences)")
		plain      = flag.Bool("plain", false, "corpus is untagged, one segmented sentence per line")
		dictPath   = flag.String("cedict", "", "CC-CEDICT csv file")
		query      = flag.String("q", "建造", "similarity query word")
		char       = flag.String("c", "建", "dictionary query character")
		tag        = flag.String("tag", "", "show words attested with this POS tag")
		topN       = flag.Uint("n", 10, "list length in the report")
		minEntries = flag.Uint("min", 5, "minimum compound count for the consistency ranking")
		vecCfg     = flag.String("vec", "", "yaml file with word2vec trainer options")
		logCfg     = flag.String("log", "", "yaml file with logger options")
		noVec      = flag.Bool("novec", false, "skip embedding training")
	)
	flag.Parse()

	opt, err := log.LoadFromFile(*logCfg)
	if err != nil {
		opt = &log.Options{Level: "info"}
	}
	logger := log.NewLog(opt)

	if *corpusPath == "" && *dictPath == "" {
		exit(errors.New("nothing to do: provide -corpus and/or -cedict"))
	}

	var rep report
	n := int(*topN)

	if *corpusPath != "" {
		c, err := loadCorpus(*corpusPath, *plain)
		exit(err)

		rep.Corpus = corpusReport(c, *tag, n)

		if !*noVec {
			o := vec.DefaultOptions()
			if *vecCfg != "" {
				o, err = vec.LoadOptions(*vecCfg)
				exit(err)
			}
			rep.Vec, err = vecReport(logger, c, o, *query, int(*minEntries), n)
			exit(err)
		}
	}

	if *dictPath != "" {
		rep.Dict, err = dictReport(*dictPath, *char, n)
		exit(err)
	}

	tpl, err := template.New("report").Parse(master)
	exit(err)
	exit(tpl.Execute(os.Stdout, rep))
}
