package cedict

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DecodeEntries reads the delimited dictionary format in file order. Rows
// with a deviant column count are padded or truncated to the fixed width,
// never rejected.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	entries := make([]Entry, 0, 10000)
	n := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", n+1, err)
		}
		n++

		if n == 1 && len(row) != 0 && row[0] == "trad" {
			continue
		}

		if len(row) != 3+NumGlosses {
			r := make([]string, 3+NumGlosses)
			copy(r, row)
			row = r
		}
		if row[0] == "" {
			continue
		}

		glosses := make([]string, 0, 4)
		for _, g := range row[3:] {
			if g != "" {
				glosses = append(glosses, g)
			}
		}

		entries = append(entries, Entry{
			Trad:    row[0],
			Simp:    row[1],
			Pinyin:  row[2],
			Glosses: glosses,
		})
	}

	return entries, nil
}
