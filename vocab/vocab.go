package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Glosses is the list of accepted English meanings of an entry, first one
// is shown as the prompt. Older data files store a single string.
type Glosses []string

func (g *Glosses) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*g = list
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return fmt.Errorf("en must be a string or a list of strings: %w", err)
	}
	if one == "" {
		*g = nil
		return nil
	}
	*g = Glosses{one}
	return nil
}

// Source is one entry as it appears in a vocabulary file.
type Source struct {
	Kana         string   `json:"kana,omitempty"`
	Kanji        string   `json:"kanji,omitempty"`
	KanaVariants []string `json:"kana_variants,omitempty"`
	English      Glosses  `json:"en"`
}

// Data is a whole vocabulary file, e.g. N5_vocab.json.
type Data struct {
	Level       string              `json:"level,omitempty"`
	LessonNames map[string]string   `json:"lessonNames,omitempty"`
	Lessons     map[string][]Source `json:"lessons"`
}

func Parse(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if d.Lessons == nil {
		d.Lessons = map[string][]Source{}
	}
	return &d, nil
}

// LessonKeys returns the lesson ids, numeric ids first in numeric order.
func (d *Data) LessonKeys() []string {
	keys := make([]string, 0, len(d.Lessons))
	for k := range d.Lessons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.ParseFloat(keys[i], 64)
		b, berr := strconv.ParseFloat(keys[j], 64)
		switch {
		case aerr == nil && berr == nil && a != b:
			return a < b
		case aerr == nil && berr != nil:
			return true
		case aerr != nil && berr == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

func (d *Data) LessonName(id string) string {
	if name, ok := d.LessonNames[id]; ok && name != "" {
		return name
	}
	return "Lesson " + id
}

// CountWords is the number of entries the given lessons contribute to a pool.
func (d *Data) CountWords(lessonIDs []string) int {
	n := 0
	for _, id := range lessonIDs {
		n += len(d.Lessons[id])
	}
	return n
}

var jsonExt = regexp.MustCompile(`(?i)\.json$`)

// CategoryLabel turns a data file name into the label shown to the learner.
func CategoryLabel(file string) string {
	return jsonExt.ReplaceAllString(file, "")
}

// Card is a pool entry: a source entry plus the provenance attached when
// the pool is built. Cards are shared by questions and never modified.
type Card struct {
	Kana         string
	Kanji        string
	KanaVariants []string
	English      []string

	Lesson  string
	Level   string
	File    string
	StarKey string
}

// Key identifies a card by content for repeat avoidance. Variants and level
// are deliberately not part of it.
func (c *Card) Key() string {
	return strings.Join([]string{c.Lesson, c.Kana, c.Kanji, strings.Join(c.English, "|")}, "|")
}

// Terms lists the Japanese forms in audio lookup priority.
func (c *Card) Terms() []string {
	var terms []string
	if c.Kana != "" {
		terms = append(terms, c.Kana)
	}
	if c.Kanji != "" {
		terms = append(terms, c.Kanji)
	}
	return append(terms, c.KanaVariants...)
}
