package cedict

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseRaw(t *testing.T) {
	e, err := ParseRaw("語言學 语言学 [yu3 yan2 xue2] /linguistics/")
	if err != nil {
		t.Fatal(err)
	}

	if e.Trad != "語言學" || e.Simp != "语言学" || e.Pinyin != "yu3 yan2 xue2" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if !reflect.DeepEqual(e.Glosses, []string{"linguistics"}) {
		t.Errorf("unexpected glosses: %v", e.Glosses)
	}
}

func TestParseRawMultiGloss(t *testing.T) {
	e, err := ParseRaw("好 好 [hao3] /good/well/proper/")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(e.Glosses, []string{"good", "well", "proper"}) {
		t.Errorf("unexpected glosses: %v", e.Glosses)
	}
}

func TestParseRawMalformed(t *testing.T) {
	for _, line := range []string{
		"not a dictionary line",
		"好 好 [hao3]",
		"好 好 好 [hao3] /good/",
		"好 好 [hao3] good",
	} {
		if _, err := ParseRaw(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: expected ErrMalformed, got %v", line, err)
		}
	}
}

func TestFromRawRoundTrip(t *testing.T) {
	src := "# CC-CEDICT sample\n# license info\n" +
		"語言學 语言学 [yu3 yan2 xue2] /linguistics/\n" +
		"好 好 [hao3] /good/well/proper/\n" +
		"龍 龙 [long2] /dragon/CL:條|条[tiao2],隻|只[zhi1]/\n"

	var buf bytes.Buffer
	if err := FromRaw(strings.NewReader(src), &buf); err != nil {
		t.Fatal(err)
	}

	entries, err := DecodeEntries(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	e := entries[0]
	if e.Trad != "語言學" || e.Simp != "语言学" || e.Pinyin != "yu3 yan2 xue2" || e.Glosses[0] != "linguistics" {
		t.Errorf("unexpected first entry: %+v", e)
	}
	if !reflect.DeepEqual(entries[1].Glosses, []string{"good", "well", "proper"}) {
		t.Errorf("unexpected glosses: %v", entries[1].Glosses)
	}

	// A gloss containing a comma survives the delimited format.
	if got := entries[2].Glosses[1]; got != "CL:條|条[tiao2],隻|只[zhi1]" {
		t.Errorf("comma gloss mangled: %q", got)
	}
}

func TestFromRawMalformedLine(t *testing.T) {
	var buf bytes.Buffer
	err := FromRaw(strings.NewReader("好 好 [hao3] /good/\ngarbage\n"), &buf)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestDecodeEntriesShortRow(t *testing.T) {
	entries, err := DecodeEntries(strings.NewReader("建,建,jian4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if e := entries[0]; e.Trad != "建" || e.Pinyin != "jian4" || len(e.Glosses) != 0 {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestDecodeEntriesLongRow(t *testing.T) {
	row := "建,建,jian4"
	for i := 0; i < 30; i++ {
		row += ",g"
	}
	entries, err := DecodeEntries(strings.NewReader(row + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries[0].Glosses) != NumGlosses {
		t.Errorf("expected %d glosses after truncation, got %d", NumGlosses, len(entries[0].Glosses))
	}
}

func TestDecodeEntriesHeader(t *testing.T) {
	entries, err := DecodeEntries(strings.NewReader("trad,simp,pinyin,def1\n建,建,jian4,to build\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("header row should be skipped, got %d entries", len(entries))
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{Trad: "好", Simp: "好", Pinyin: "hao3", Glosses: []string{"good", "well"}}
	if got := e.String(); got != "好 好 [hao3] /good/well/" {
		t.Errorf("got %q", got)
	}
}
