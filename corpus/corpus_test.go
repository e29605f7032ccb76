package corpus

import (
	"strings"
	"testing"
)

const tagged = "我\tNh\n愛\tVJ\n中文\tNa\n\n他\tNh\n學\tVC\n語言學\tNa\n"

func TestDecodeTagged(t *testing.T) {
	c, err := DecodeTagged(strings.NewReader(tagged))
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Sents()) != 2 {
		t.Errorf("expected 2 sentences, got %d", len(c.Sents()))
	}
	if len(c.Words()) != 6 {
		t.Errorf("expected 6 tokens, got %d", len(c.Words()))
	}
	if len(c.TaggedWords()) != 6 {
		t.Errorf("expected 6 tagged tokens, got %d", len(c.TaggedWords()))
	}

	tw := c.TaggedWords()[2]
	if tw.Word != "中文" || tw.Tag != "Na" {
		t.Errorf("unexpected tagged token: %+v", tw)
	}
	if got := c.Sents()[1]; len(got) != 3 || got[0] != "他" {
		t.Errorf("unexpected second sentence: %v", got)
	}
}

func TestDecodeTaggedMalformed(t *testing.T) {
	if _, err := DecodeTagged(strings.NewReader("我 Nh\n")); err == nil {
		t.Error("expected an error for a token without a tab")
	}
	if _, err := DecodeTagged(strings.NewReader("我\t\n")); err == nil {
		t.Error("expected an error for an empty tag")
	}
}

func TestDecodePlain(t *testing.T) {
	c, err := DecodePlain(strings.NewReader("我 愛 中文\n\n他 學 語言學\n"))
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Sents()) != 2 {
		t.Errorf("expected 2 sentences, got %d", len(c.Sents()))
	}
	if len(c.TaggedWords()) != 0 {
		t.Errorf("plain corpus should have no tagged view, got %d", len(c.TaggedWords()))
	}
	if w := c.Words(); len(w) != 6 || w[5] != "語言學" {
		t.Errorf("unexpected token sequence: %v", w)
	}
}
