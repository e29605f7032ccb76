// Package cedict models CC-CEDICT dictionary entries and converts between
// the upstream plain-text dump and the delimited format the index consumes.
package cedict

import (
	"errors"
	"fmt"
	"strings"
)

// NumGlosses is the fixed number of gloss columns in the delimited format;
// entries with more glosses are truncated on conversion.
const NumGlosses = 22

// ErrMalformed is returned for a raw dump line that does not follow the
// `trad simp [pinyin] /gloss/.../` shape.
var ErrMalformed = errors.New("malformed entry")

// Entry is one dictionary row. A headword may have several entries
// (homographs, multiple pronunciations).
type Entry struct {
	Trad    string
	Simp    string
	Pinyin  string
	Glosses []string
}

// String renders the entry in the upstream dump shape.
func (e Entry) String() string {
	return fmt.Sprintf(
		"%s %s [%s] /%s/",
		e.Trad, e.Simp, e.Pinyin, strings.Join(e.Glosses, "/"),
	)
}

// HasGloss reports whether any gloss contains the given marker substring.
func (e Entry) HasGloss(marker string) bool {
	for _, g := range e.Glosses {
		if strings.Contains(g, marker) {
			return true
		}
	}
	return false
}
