package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func dec(r io.Reader, row func(int, string) error) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	n := 0
	for s.Scan() {
		n++
		if err := row(n, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// DecodeTagged reads a tagged corpus: one `word<TAB>tag` token per line,
// sentences separated by blank lines.
func DecodeTagged(r io.Reader) (*Corpus, error) {
	sents := make([][]string, 0, 1000)
	tagged := make([]TaggedWord, 0, 10000)
	var cur []string

	flush := func() {
		if len(cur) != 0 {
			sents = append(sents, cur)
			cur = nil
		}
	}

	err := dec(r, func(n int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			return nil
		}

		s := strings.Split(line, "\t")
		if len(s) != 2 || s[0] == "" || s[1] == "" {
			return fmt.Errorf("malformed token on line %d: %q", n, line)
		}

		cur = append(cur, s[0])
		tagged = append(tagged, TaggedWord{Word: s[0], Tag: s[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()

	return New(sents, tagged), nil
}

// DecodePlain reads an untagged corpus: one pre-segmented sentence per line,
// tokens separated by whitespace.
func DecodePlain(r io.Reader) (*Corpus, error) {
	sents := make([][]string, 0, 1000)
	err := dec(r, func(n int, line string) error {
		s := strings.Fields(line)
		if len(s) != 0 {
			sents = append(sents, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(sents, nil), nil
}
