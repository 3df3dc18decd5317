package vocab

import "strings"

// StarKey is the stable identity used for the starred set.
func StarKey(c *Card, file string) string {
	return strings.Join([]string{
		file,
		c.Lesson,
		c.Kana,
		c.Kanji,
		strings.Join(c.English, "|"),
	}, "::")
}

// BuildPool flattens the selected lessons into cards, in the order the
// lesson ids are given. Unknown ids contribute nothing, and a word that
// appears in two selected lessons appears twice.
func BuildPool(d *Data, lessonIDs []string, file string) []*Card {
	if d == nil {
		return nil
	}
	level := d.Level
	if level == "" {
		level = CategoryLabel(file)
	}

	var pool []*Card
	for _, id := range lessonIDs {
		for _, src := range d.Lessons[id] {
			c := &Card{
				Kana:         src.Kana,
				Kanji:        src.Kanji,
				KanaVariants: append([]string(nil), src.KanaVariants...),
				English:      append([]string(nil), src.English...),
				Lesson:       id,
				Level:        level,
				File:         file,
			}
			c.StarKey = StarKey(c, file)
			pool = append(pool, c)
		}
	}
	return pool
}

type Marker interface {
	Has(key string) bool
}

// FilterStarred keeps the cards whose star key is marked.
func FilterStarred(pool []*Card, starred Marker) []*Card {
	var out []*Card
	for _, c := range pool {
		if starred.Has(c.StarKey) {
			out = append(out, c)
		}
	}
	return out
}
