package normalize

import "testing"

func TestEnglish(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello (greeting)", "hello"},
		{"  To   RUN!  ", "to run"},
		{"it's", "it s"},
		{`"quoted"; stuff: here.`, "quoted stuff here"},
		{"a (b) c (d)", "a c"},
		{"(only hint)", ""},
		{"", ""},
		{"line\n(two\nlines) end", "line end"},
		{"ice\u00a0cream", "ice cream"},
		{"to\u3000eat\u2009now", "to eat now"},
	}
	for _, c := range cases {
		if got := English(c.in); got != c.want {
			t.Errorf("English(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestJapanese(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ねこ", "ねこ"},
		{" ねこ。", "ねこ"},
		{"ね　こ", "ねこ"},
		{"ね\u3000こ\u00a0", "ねこ"},
		{"\ufeffね\u2003こ", "ねこ"},
		{"「ねこ」！", "ねこ"},
		{"たべる(食べる)", "たべる"},
		{"たべる（食べる）", "たべる食べる"},
		{"お-はよう", "おはよう"},
		{"", ""},
		// か + combining dakuten composes to が
		{"\u304b\u3099", "\u304c"},
	}
	for _, c := range cases {
		if got := Japanese(c.in); got != c.want {
			t.Errorf("Japanese(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIdempotent(t *testing.T) {
	samples := []string{
		"Hello (greeting)",
		"  Mixed CASE, with: punctuation!? ",
		"a ((nested) hint) tail",
		"(x(y)z)",
		"line\n(two\nlines) end",
		"ねこ (neko)",
		"「たべる」、。！",
		"がん",
		"(unclosed hint",
		"\t\n",
	}
	for _, s := range samples {
		if once := English(s); English(once) != once {
			t.Errorf("English not idempotent for %q: %q -> %q", s, once, English(once))
		}
		if once := Japanese(s); Japanese(once) != once {
			t.Errorf("Japanese not idempotent for %q: %q -> %q", s, once, Japanese(once))
		}
	}
}

func TestEnglishAll(t *testing.T) {
	got := EnglishAll([]string{"Cat", "(hint)", " ", "Dog!"})
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("EnglishAll = %v", got)
	}
}
