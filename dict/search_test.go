package dict

import (
	"reflect"
	"testing"

	"github.com/dashtaisen/chinese-roots/cedict"
)

func searchable() *Index {
	return New([]cedict.Entry{
		{Trad: "建造", Simp: "建造", Pinyin: "jian4 zao4", Glosses: []string{"to construct"}},
		{Trad: "建立", Simp: "建立", Pinyin: "jian4 li4", Glosses: []string{"to establish"}},
		{Trad: "人造雨", Simp: "人造雨", Pinyin: "ren2 zao4 yu3", Glosses: []string{"artificial rain"}},
		{Trad: "因而", Simp: "因而", Pinyin: "yin1 er2", Glosses: []string{"therefore"}},
	})
}

func matched(ix *Index, query string) []string {
	res := ix.Search(query)
	keys := make([]string, len(res))
	for i, es := range res {
		keys[i] = es[0].Trad
	}
	return keys
}

func TestSearchPrefix(t *testing.T) {
	ix := searchable()

	if got := matched(ix, "建*"); !reflect.DeepEqual(got, []string{"建立", "建造"}) {
		t.Errorf("建*: %v", got)
	}
	if got := matched(ix, "造*"); len(got) != 0 {
		t.Errorf("造* should match nothing, got %v", got)
	}
}

func TestSearchBareQueryIsPrefix(t *testing.T) {
	ix := searchable()

	// A query without wildcard behaves as a prefix query.
	if got, want := matched(ix, "建"), matched(ix, "建*"); !reflect.DeepEqual(got, want) {
		t.Errorf("bare query: %v, prefix query: %v", got, want)
	}
}

func TestSearchSuffix(t *testing.T) {
	ix := searchable()

	if got := matched(ix, "*造"); !reflect.DeepEqual(got, []string{"建造"}) {
		t.Errorf("*造: %v", got)
	}
	if got := matched(ix, "*而"); !reflect.DeepEqual(got, []string{"因而"}) {
		t.Errorf("*而: %v", got)
	}
}

func TestSearchInterior(t *testing.T) {
	ix := searchable()

	// 造 is a suffix in 建造 and interior only in 人造雨.
	if got := matched(ix, "*造*"); !reflect.DeepEqual(got, []string{"人造雨"}) {
		t.Errorf("*造*: %v", got)
	}
	if got := matched(ix, "*建*"); len(got) != 0 {
		t.Errorf("建 is never interior, got %v", got)
	}
}

func TestSearchNoMatch(t *testing.T) {
	ix := searchable()

	if got := ix.Search("貓*"); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
	if got := ix.Search("*"); len(got) != 0 {
		t.Errorf("lone wildcard should match nothing, got %v", got)
	}
}

func TestSearchReturnsEntryLists(t *testing.T) {
	ix := searchable()

	res := ix.Search("*造")
	if len(res) != 1 || len(res[0]) != 1 || res[0][0].Pinyin != "jian4 zao4" {
		t.Errorf("unexpected result shape: %v", res)
	}
}

func TestCompounds(t *testing.T) {
	ix := searchable()

	if got := ix.Compounds("建*"); !reflect.DeepEqual(got, []string{"建立", "建造"}) {
		t.Errorf("compounds 建*: %v", got)
	}
	if got := ix.Compounds("*造*"); !reflect.DeepEqual(got, []string{"人造雨"}) {
		t.Errorf("compounds *造*: %v", got)
	}
}
