package quiz

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lai323/vocabgarden/normalize"
	"github.com/lai323/vocabgarden/vocab"
)

const (
	JPDistractorCap = 20
	ENDistractorCap = 30
	MaxChoices      = 4

	// consecutive rejected draws per pool slot before repeats are allowed
	redrawsPerCard = 50
)

// Generator samples a pool into questions. It is not safe for concurrent
// use because it owns a math/rand source.
type Generator struct {
	Rand            *rand.Rand
	JPDistractorCap int
	ENDistractorCap int
	MaxChoices      int
}

func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		Rand:            rand.New(src),
		JPDistractorCap: JPDistractorCap,
		ENDistractorCap: ENDistractorCap,
		MaxChoices:      MaxChoices,
	}
}

// BuildQuestions draws ClampCount(s.QuestionCount) questions from pool.
//
// When the pool has at least as many cards as questions, a card whose
// content key was already drawn is redrawn, so equal words in two pool
// slots still count as used. Smaller pools allow repeats. If the pool has
// enough slots but too few distinct keys, redrawing gives up after
// redrawsPerCard*len(pool) consecutive misses and allows repeats too.
func (g *Generator) BuildQuestions(pool []*vocab.Card, s Settings) []Question {
	if len(pool) == 0 {
		return nil
	}
	target := ClampCount(s.QuestionCount)
	avoid := len(pool) >= target
	used := map[string]bool{}
	misses := 0
	maxMisses := redrawsPerCard * len(pool)

	out := make([]Question, 0, target)
	for len(out) < target {
		card := pool[g.Rand.Intn(len(pool))]
		if avoid {
			key := card.Key()
			if used[key] {
				misses++
				if misses >= maxMisses {
					avoid = false
				}
				continue
			}
			used[key] = true
			misses = 0
		}
		out = append(out, g.question(card, pool, s))
	}
	return out
}

func (g *Generator) coin() bool {
	return g.Rand.Float64() < 0.5
}

func (g *Generator) question(card *vocab.Card, pool []*vocab.Card, s Settings) Question {
	q := Question{Card: card, Direction: JP2EN}
	switch s.QuestionMode {
	case ModeEN2JP:
		q.Direction = EN2JP
	case ModeMixed:
		if !g.coin() {
			q.Direction = EN2JP
		}
	case ModeListening:
		q.Listening = true
	}

	q.AnswerMode = s.AnswerMode
	switch s.AnswerMode {
	case AnswerMixed:
		q.AnswerMode = AnswerTyping
		if !g.coin() {
			q.AnswerMode = AnswerChoice
		}
	case AnswerTyping, AnswerChoice:
	default:
		q.AnswerMode = AnswerTyping
	}

	if q.AnswerMode == AnswerChoice {
		q.Choices, q.CorrectText = g.MakeChoices(&q, pool)
	}
	return q
}

func (g *Generator) shuffled(pool []*vocab.Card) []*vocab.Card {
	out := append([]*vocab.Card(nil), pool...)
	g.Rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (g *Generator) shuffleStrings(items []string) []string {
	g.Rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}

// orderedSet keeps first-insertion order so a seeded generator is
// reproducible.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet(first string) *orderedSet {
	return &orderedSet{items: []string{first}, seen: map[string]bool{first: true}}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

// MakeChoices picks the options for a multiple choice question. The
// correct text is always among them; there may be fewer than MaxChoices
// when the pool is small or its words look alike.
func (g *Generator) MakeChoices(q *Question, pool []*vocab.Card) ([]string, string) {
	card := q.Card
	var (
		correctText string
		opts        *orderedSet
	)

	if q.Direction == EN2JP {
		correctText = vocab.DisplayJP(card, vocab.DisplayBoth)
		correctN := normalize.Japanese(firstNonEmpty(card.Kana, card.Kanji))
		opts = newOrderedSet(correctText)

		n := 0
		for _, d := range g.shuffled(pool) {
			if d == card {
				continue
			}
			if n >= g.ENDistractorCap || len(opts.items) >= g.MaxChoices {
				break
			}
			n++
			txt := vocab.DisplayJP(d, vocab.DisplayBoth)
			dn := normalize.Japanese(firstNonEmpty(d.Kana, d.Kanji))
			if txt != "" && dn != "" && dn != correctN {
				opts.add(txt)
			}
		}
	} else {
		correctText = strings.Join(card.English, ", ")
		correctN := normalize.English(firstGloss(card))
		opts = newOrderedSet(correctText)

		n := 0
		for _, d := range g.shuffled(pool) {
			if d == card || len(d.English) == 0 {
				continue
			}
			if n >= g.JPDistractorCap || len(opts.items) >= g.MaxChoices {
				break
			}
			n++
			txt := strings.Join(d.English, ", ")
			if txt != "" && normalize.English(firstGloss(d)) != correctN {
				opts.add(txt)
			}
		}
	}

	choices := g.shuffleStrings(opts.items)
	if len(choices) > g.MaxChoices {
		choices = choices[:g.MaxChoices]
	}
	return choices, correctText
}

func firstGloss(c *vocab.Card) string {
	if len(c.English) == 0 {
		return ""
	}
	return c.English[0]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
