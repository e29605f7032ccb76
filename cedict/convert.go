package cedict

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

func header() []string {
	h := make([]string, 3, 3+NumGlosses)
	h[0], h[1], h[2] = "trad", "simp", "pinyin"
	for i := 1; i <= NumGlosses; i++ {
		h = append(h, fmt.Sprintf("def%d", i))
	}
	return h
}

// ParseRaw parses one line of the upstream dump:
//
//	語言學 语言学 [yu3 yan2 xue2] /linguistics/
func ParseRaw(line string) (Entry, error) {
	var e Entry

	lb := strings.Index(line, " [")
	rb := strings.Index(line, "] ")
	if lb < 0 || rb < lb {
		return e, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	head := strings.Fields(line[:lb])
	if len(head) != 2 {
		return e, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	defs := strings.TrimSpace(line[rb+2:])
	if len(defs) < 2 || defs[0] != '/' || defs[len(defs)-1] != '/' {
		return e, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	e.Trad = head[0]
	e.Simp = head[1]
	e.Pinyin = line[lb+2 : rb]
	for _, g := range strings.Split(defs[1:len(defs)-1], "/") {
		if g != "" {
			e.Glosses = append(e.Glosses, g)
		}
	}
	if len(e.Glosses) == 0 {
		return e, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	if len(e.Glosses) > NumGlosses {
		e.Glosses = e.Glosses[:NumGlosses]
	}

	return e, nil
}

// FromRaw converts the upstream dump to the delimited format, dropping
// comment lines.
func FromRaw(r io.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header()); err != nil {
		return err
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := ParseRaw(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		row := make([]string, 3+NumGlosses)
		row[0], row[1], row[2] = e.Trad, e.Simp, e.Pinyin
		copy(row[3:], e.Glosses)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// ConvertFile is the offline conversion entrypoint: read an upstream dump,
// write the delimited file.
func ConvertFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := FromRaw(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
