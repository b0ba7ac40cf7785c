// Package generation synthesizes complete quests from a short prompt using
// fixed lore tables. It is the fallback used whenever the external generator
// is unavailable or returns something unusable.
package generation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/progression"
)

// FallbackBonus is added on top of the regular quest reward for generated
// quests.
const FallbackBonus = 10

const emptyPromptText = "un nuevo desafío"

type Generator struct {
	classifier *classify.Classifier
	rules      *progression.Rules
	lore       Lore
	picker     Picker
}

func NewGenerator(c *classify.Classifier, r *progression.Rules, lore Lore, p Picker) *Generator {
	return &Generator{classifier: c, rules: r, lore: lore, picker: p}
}

// GenerateQuest builds a quest from prompt. preferred wins over the detected
// stat when it is valid.
func (g *Generator) GenerateQuest(prompt string, preferred domain.Stat, difficulty domain.Difficulty) domain.Quest {
	if !difficulty.IsValid() {
		difficulty = domain.DifficultyStandard
	}

	stat := preferred
	if !stat.IsValid() {
		stat, _ = g.classifier.Detect(prompt)
	}

	epic := g.GenerateEpicElements(stat)
	reward := g.rules.QuestXP(g.rules.BaseXP(difficulty), false, stat) + FallbackBonus

	tags := []string{string(domain.ProvenanceFallback), strings.ToLower(string(difficulty))}
	if stat.IsValid() {
		tags = append(tags, strings.ToLower(string(stat)))
	}

	return domain.Quest{
		Title:            g.GenerateTitle(prompt, stat, difficulty),
		Description:      g.GenerateDescription(prompt, stat),
		Difficulty:       difficulty,
		TargetStat:       stat,
		ExperienceReward: reward,
		GeneratedBy:      domain.ProvenanceFallback,
		Tags:             tags,
		Epic:             &epic,
	}
}

// GenerateTitle reads like "Aventura Noble: Forjar en la Arena de Acero", or
// embeds the prompt verbatim when there is no stat.
func (g *Generator) GenerateTitle(prompt string, stat domain.Stat, difficulty domain.Difficulty) string {
	f := g.lore.flavor(difficulty)
	head := capitalize(f.Intensity) + " " + f.Prefix

	sl, ok := g.lore.Stats[stat]
	if !ok {
		return head + ": " + promptText(prompt)
	}
	action := Pick(g.picker, sl.Actions)
	place := Pick(g.picker, sl.Places)
	return fmt.Sprintf("%s: %s en %s", head, action, place)
}

func (g *Generator) GenerateDescription(prompt string, stat domain.Stat) string {
	if sl, ok := g.lore.Stats[stat]; ok {
		return fmt.Sprintf(sl.Description, promptText(prompt))
	}
	return fmt.Sprintf(g.lore.GenericDesc, promptText(prompt))
}

func (g *Generator) GenerateEpicElements(stat domain.Stat) domain.EpicElements {
	sl, ok := g.lore.Stats[stat]
	if !ok {
		return g.lore.Generic
	}
	return domain.EpicElements{
		Realm:  sl.Realm,
		Enemy:  Pick(g.picker, sl.Enemies),
		Weapon: Pick(g.picker, sl.Weapons),
		Reward: sl.Reward,
	}
}

func promptText(prompt string) string {
	p := strings.TrimSpace(prompt)
	if p == "" {
		return emptyPromptText
	}
	return p
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
