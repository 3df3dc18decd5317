package vocab

import "testing"

type markSet map[string]bool

func (m markSet) Has(key string) bool { return m[key] }

func TestBuildPool(t *testing.T) {
	d := mustParse(t, sampleData)
	pool := BuildPool(d, []string{"2", "1", "missing"}, "N5_vocab.json")
	if len(pool) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(pool))
	}
	// caller order is kept
	if pool[0].Lesson != "2" || pool[2].Lesson != "1" {
		t.Fatalf("unexpected order: %s, %s", pool[0].Lesson, pool[2].Lesson)
	}
	// 犬 is in both lessons and is not deduplicated
	dogs := 0
	for _, c := range pool {
		if c.Kanji == "犬" {
			dogs++
		}
		if c.Level != "N5" {
			t.Errorf("expected level N5, got %q", c.Level)
		}
		if c.StarKey != StarKey(c, "N5_vocab.json") {
			t.Errorf("star key not precomputed for %+v", c)
		}
	}
	if dogs != 2 {
		t.Fatalf("expected 犬 twice, got %d", dogs)
	}
}

func TestBuildPoolLevelFromFile(t *testing.T) {
	d := mustParse(t, `{"lessons": {"1": [{"kana": "ねこ", "kanji": "猫", "en": ["cat"]}]}}`)
	pool := BuildPool(d, []string{"1"}, "Animals.json")
	if len(pool) != 1 {
		t.Fatalf("expected 1 card, got %d", len(pool))
	}
	if pool[0].Level != "Animals" {
		t.Fatalf("expected level from file name, got %q", pool[0].Level)
	}
	if len(BuildPool(d, nil, "Animals.json")) != 0 {
		t.Fatal("expected empty pool for no lessons")
	}
	if BuildPool(nil, []string{"1"}, "x.json") != nil {
		t.Fatal("expected nil pool for nil data")
	}
}

func TestBuildPoolCopiesSlices(t *testing.T) {
	d := mustParse(t, sampleData)
	pool := BuildPool(d, []string{"2"}, "f.json")
	pool[1].English[0] = "changed"
	if d.Lessons["2"][1].English[0] != "to eat" {
		t.Fatal("pool card shares gloss storage with source data")
	}
}

func TestStarKey(t *testing.T) {
	base := &Card{Lesson: "1", Kana: "ねこ", Kanji: "猫", English: []string{"cat"}}
	key := StarKey(base, "a.json")
	if key != StarKey(&Card{Lesson: "1", Kana: "ねこ", Kanji: "猫", English: []string{"cat"}}, "a.json") {
		t.Fatal("star key not stable for equal entries")
	}
	variants := []struct {
		name string
		card *Card
		file string
	}{
		{"file", base, "b.json"},
		{"lesson", &Card{Lesson: "2", Kana: "ねこ", Kanji: "猫", English: []string{"cat"}}, "a.json"},
		{"kana", &Card{Lesson: "1", Kana: "ネコ", Kanji: "猫", English: []string{"cat"}}, "a.json"},
		{"kanji", &Card{Lesson: "1", Kana: "ねこ", Kanji: "ネコ", English: []string{"cat"}}, "a.json"},
		{"english", &Card{Lesson: "1", Kana: "ねこ", Kanji: "猫", English: []string{"cat", "kitty"}}, "a.json"},
	}
	for _, v := range variants {
		if StarKey(v.card, v.file) == key {
			t.Errorf("star key does not change with %s", v.name)
		}
	}
}

func TestCardKeyIgnoresVariants(t *testing.T) {
	a := &Card{Lesson: "1", Kana: "たべる", English: []string{"eat"}, KanaVariants: []string{"たべます"}}
	b := &Card{Lesson: "1", Kana: "たべる", English: []string{"eat"}, Level: "N4"}
	if a.Key() != b.Key() {
		t.Fatalf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}
}

func TestFilterStarred(t *testing.T) {
	d := mustParse(t, sampleData)
	pool := BuildPool(d, []string{"1"}, "f.json")
	got := FilterStarred(pool, markSet{pool[1].StarKey: true})
	if len(got) != 1 || got[0] != pool[1] {
		t.Fatalf("unexpected filter result %v", got)
	}
	if len(FilterStarred(pool, markSet{})) != 0 {
		t.Fatal("expected empty result with nothing starred")
	}
}
