// Package classify maps free text to the stat it most likely trains.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/alexanderramin/gesta/internal/domain"
)

// KeywordTable lists the keywords that vote for each stat. Keywords must be
// lower case and free of diacritics.
type KeywordTable map[domain.Stat][]string

// DefaultKeywords returns the built-in English and Spanish keywords.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		domain.StatStrength: {
			"gym", "exercise", "workout", "fitness", "run", "sport",
			"gimnasio", "ejercicio", "entrenar", "deporte", "correr",
		},
		domain.StatDexterity: {
			"art", "draw", "paint", "craft", "music", "cook",
			"arte", "dibujar", "pintar", "cocinar", "musica",
		},
		domain.StatWisdom: {
			"study", "learn", "read", "book", "research", "code",
			"estudiar", "aprender", "leer", "libro", "investigar",
		},
		domain.StatCharisma: {
			"talk", "social", "people", "friend", "call", "meeting",
			"hablar", "amigo", "llamar", "reunion", "gente",
		},
	}
}

// Classifier scores text by keyword hits. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	keywords KeywordTable
	lower    cases.Caser
}

func New(table KeywordTable) *Classifier {
	kw := make(KeywordTable, len(table))
	for stat, words := range table {
		kw[stat] = append([]string(nil), words...)
	}
	return &Classifier{keywords: kw, lower: cases.Lower(language.Und)}
}

func Default() *Classifier {
	return New(DefaultKeywords())
}

// Scores counts, per stat, how many of its keywords occur inside any token.
// A keyword counts once no matter how many tokens contain it.
func (c *Classifier) Scores(text string) map[domain.Stat]int {
	tokens := c.tokenize(text)
	scores := make(map[domain.Stat]int, len(domain.AllStats))
	for _, stat := range domain.AllStats {
		for _, kw := range c.keywords[stat] {
			for _, tok := range tokens {
				if strings.Contains(tok, kw) {
					scores[stat]++
					break
				}
			}
		}
	}
	return scores
}

// Detect returns the stat with the strictly highest score. Equal scores go to
// the stat listed first in domain.AllStats. No hits means no stat.
func (c *Classifier) Detect(text string) (domain.Stat, bool) {
	scores := c.Scores(text)
	best := domain.StatNone
	bestScore := 0
	for _, stat := range domain.AllStats {
		if scores[stat] > bestScore {
			best = stat
			bestScore = scores[stat]
		}
	}
	return best, bestScore > 0
}

func (c *Classifier) tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Fields(c.fold(text))
}

// fold lower-cases text and strips combining marks so "Reunión" matches
// "reunion".
func (c *Classifier) fold(text string) string {
	lowered := c.lower.String(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
