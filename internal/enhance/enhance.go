// Package enhance normalizes quest drafts into persistable quests. It never
// rejects a malformed field; it replaces it with a safe default.
package enhance

import (
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/alexanderramin/gesta/internal/progression"
)

// ErrNilDraft is returned when no draft is passed at all. It signals a
// programming error in the caller.
var ErrNilDraft = errors.New("quest draft is nil")

const (
	// MinTitleLength is the shortest external title that is kept.
	MinTitleLength = 3

	AITitlePrefix      = "Misión: "
	DescriptionPrefix  = "Completa esta importante misión: "
	UntitledQuestTitle = "Misión sin nombre"
	TagAIGenerated     = "ai-generated"
	TagManual          = "manual"
)

type Enhancer struct {
	classifier *classify.Classifier
	rules      *progression.Rules
	now        func() time.Time
}

// Option configures an Enhancer.
type Option func(*Enhancer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Enhancer) {
		e.now = now
	}
}

func New(c *classify.Classifier, r *progression.Rules, opts ...Option) *Enhancer {
	e := &Enhancer{
		classifier: c,
		rules:      r,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnhanceManual normalizes a hand-authored draft. When a stat is supplied or
// detected from title and description, the reward is recomputed and replaces
// whatever the caller passed. Without a stat the reward is left alone.
func (e *Enhancer) EnhanceManual(d *domain.QuestDraft) (*domain.Quest, error) {
	if d == nil {
		return nil, ErrNilDraft
	}

	title := strings.TrimSpace(deref(d.Title))
	desc := strings.TrimSpace(deref(d.Description))
	if title == "" {
		if desc != "" {
			title = AITitlePrefix + desc
		} else {
			title = UntitledQuestTitle
		}
	}
	if desc == "" {
		desc = DescriptionPrefix + title
	}

	difficulty := domain.ParseDifficulty(d.Difficulty)

	stat, ok := domain.ParseStat(d.TargetStat)
	if !ok {
		stat, _ = e.classifier.Detect(deref(d.Title) + " " + deref(d.Description))
	}

	reward := rewardOf(d)
	if stat.IsValid() {
		reward = e.rules.QuestXP(e.rules.BaseXP(difficulty), d.IsDaily, stat)
	}

	tags := []string{TagManual}
	if d.Tags.IsList && len(d.Tags.Values) > 0 {
		tags = copyTags(d.Tags.Values)
		if !slices.Contains(tags, TagManual) {
			tags = append(tags, TagManual)
		}
	}

	return &domain.Quest{
		Title:            title,
		Description:      desc,
		Difficulty:       difficulty,
		TargetStat:       stat,
		ExperienceReward: reward,
		IsDaily:          d.IsDaily,
		GeneratedBy:      sourceOr(d, domain.ProvenanceManual),
		EnhancedBy:       domain.ProvenanceManualEnhancer,
		Tags:             tags,
		Epic:             d.Epic,
		EnhancedAt:       e.now(),
	}, nil
}

// EnhanceAI repairs output from the external generator. prompt is the text
// the user originally asked for and seeds the replacement title and
// description.
func (e *Enhancer) EnhanceAI(d *domain.QuestDraft, prompt string) (*domain.Quest, error) {
	if d == nil {
		return nil, ErrNilDraft
	}

	title := deref(d.Title)
	if d.Title == nil || utf8.RuneCountInString(strings.TrimSpace(title)) < MinTitleLength {
		title = AITitlePrefix + prompt
	}

	desc := deref(d.Description)
	if d.Description == nil || strings.TrimSpace(desc) == "" {
		desc = DescriptionPrefix + prompt
	}

	var tags []string
	if d.Tags.IsList {
		tags = copyTags(d.Tags.Values)
	} else {
		tags = []string{TagAIGenerated}
	}

	stat, _ := domain.ParseStat(d.TargetStat)

	return &domain.Quest{
		Title:            title,
		Description:      desc,
		Difficulty:       domain.ParseDifficulty(d.Difficulty),
		TargetStat:       stat,
		ExperienceReward: rewardOf(d),
		IsDaily:          d.IsDaily,
		GeneratedBy:      sourceOr(d, domain.ProvenanceAI),
		EnhancedBy:       domain.ProvenanceAIEnhancer,
		Tags:             tags,
		Epic:             d.Epic,
		EnhancedAt:       e.now(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func rewardOf(d *domain.QuestDraft) int {
	if d.ExperienceReward == nil || *d.ExperienceReward < 0 {
		return 0
	}
	return *d.ExperienceReward
}

func sourceOr(d *domain.QuestDraft, fallback domain.Provenance) domain.Provenance {
	if d.Source != "" {
		return d.Source
	}
	return fallback
}

func copyTags(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
