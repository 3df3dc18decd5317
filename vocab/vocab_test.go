package vocab

import (
	"strings"
	"testing"
)

const sampleData = `{
  "level": "N5",
  "lessonNames": {"1": "Animals"},
  "lessons": {
    "10": [{"kana": "みず", "kanji": "水", "en": ["water"]}],
    "2": [
      {"kana": "いぬ", "kanji": "犬", "en": ["dog"]},
      {"kana": "たべる", "kanji": "食べる", "kana_variants": ["たべます"], "en": ["to eat", "eat"]}
    ],
    "1": [
      {"kana": "ねこ", "kanji": "猫", "en": ["cat"]},
      {"kana": "いぬ", "kanji": "犬", "en": ["dog"]}
    ],
    "extra": [{"kana": "はい", "en": "yes"}]
  }
}`

func mustParse(t *testing.T, s string) *Data {
	t.Helper()
	d, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func TestParse(t *testing.T) {
	d := mustParse(t, sampleData)
	if d.Level != "N5" {
		t.Fatalf("expected level N5, got %q", d.Level)
	}
	if got := d.Lessons["2"][1].KanaVariants; len(got) != 1 || got[0] != "たべます" {
		t.Fatalf("unexpected variants %v", got)
	}
	// single string gloss is accepted
	if got := d.Lessons["extra"][0].English; len(got) != 1 || got[0] != "yes" {
		t.Fatalf("unexpected glosses %v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"lessons": {"1": [{"en": 3}]}}`)); err == nil {
		t.Fatal("expected error for numeric gloss")
	}
	d := mustParse(t, `{}`)
	if d.Lessons == nil || len(d.LessonKeys()) != 0 {
		t.Fatalf("expected empty lessons, got %v", d.Lessons)
	}
}

func TestLessonKeys(t *testing.T) {
	d := mustParse(t, sampleData)
	got := strings.Join(d.LessonKeys(), ",")
	if got != "1,2,10,extra" {
		t.Fatalf("unexpected lesson order %s", got)
	}
}

func TestLessonNameAndCount(t *testing.T) {
	d := mustParse(t, sampleData)
	if d.LessonName("1") != "Animals" {
		t.Errorf("expected named lesson, got %q", d.LessonName("1"))
	}
	if d.LessonName("2") != "Lesson 2" {
		t.Errorf("expected default name, got %q", d.LessonName("2"))
	}
	if n := d.CountWords([]string{"1", "2", "missing"}); n != 4 {
		t.Errorf("expected 4 words, got %d", n)
	}
}

func TestCategoryLabel(t *testing.T) {
	for in, want := range map[string]string{
		"N5_vocab.json": "N5_vocab",
		"N4.JSON":       "N4",
		"plain":         "plain",
	} {
		if got := CategoryLabel(in); got != want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayJP(t *testing.T) {
	both := &Card{Kana: "ねこ", Kanji: "猫"}
	kanaOnly := &Card{Kana: "はい"}
	kanjiOnly := &Card{Kanji: "猫"}
	same := &Card{Kana: "ペン", Kanji: "ペン"}
	none := &Card{}

	cases := []struct {
		card *Card
		mode DisplayMode
		want string
	}{
		{both, DisplayKana, "ねこ"},
		{both, DisplayKanji, "猫"},
		{both, DisplayBoth, "ねこ  (猫)"},
		{kanaOnly, DisplayKanji, "はい"},
		{kanjiOnly, DisplayKana, "猫"},
		{kanjiOnly, DisplayBoth, "猫"},
		{same, DisplayBoth, "ペン"},
		{none, DisplayBoth, ""},
		{none, DisplayKana, ""},
	}
	for _, c := range cases {
		if got := DisplayJP(c.card, c.mode); got != c.want {
			t.Errorf("DisplayJP(%+v, %s) = %q, want %q", c.card, c.mode, got, c.want)
		}
	}
}

func TestCardTerms(t *testing.T) {
	c := &Card{Kana: "たべる", Kanji: "食べる", KanaVariants: []string{"たべます"}}
	if got := strings.Join(c.Terms(), ","); got != "たべる,食べる,たべます" {
		t.Fatalf("unexpected terms %s", got)
	}
	if len((&Card{}).Terms()) != 0 {
		t.Fatal("expected no terms for empty card")
	}
}
