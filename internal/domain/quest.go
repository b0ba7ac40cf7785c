package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// EpicElements is the lore flavor attached to a generated quest.
type EpicElements struct {
	Realm  string `json:"realm"`
	Enemy  string `json:"enemy"`
	Weapon string `json:"weapon"`
	Reward string `json:"reward"`
}

type Quest struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Difficulty       Difficulty    `json:"difficulty"`
	TargetStat       Stat          `json:"targetStat"`
	ExperienceReward int           `json:"experienceReward"`
	IsDaily          bool          `json:"isDaily"`
	GeneratedBy      Provenance    `json:"generatedBy"`
	EnhancedBy       Provenance    `json:"enhancedBy"`
	Tags             []string      `json:"tags"`
	Epic             *EpicElements `json:"epicElements,omitempty"`
	EnhancedAt       time.Time     `json:"enhancedAt"`
	CreatedAt        time.Time     `json:"createdAt"`
	CompletedAt      *time.Time    `json:"completedAt,omitempty"`
}

// IsCompleted reports whether the quest has been turned in.
func (q *Quest) IsCompleted() bool {
	return q.CompletedAt != nil
}

// Draft converts a quest back into a draft so it can be enhanced again.
func (q *Quest) Draft() *QuestDraft {
	title := q.Title
	desc := q.Description
	reward := q.ExperienceReward
	tags := make([]string, len(q.Tags))
	copy(tags, q.Tags)
	return &QuestDraft{
		Title:            &title,
		Description:      &desc,
		Difficulty:       string(q.Difficulty),
		TargetStat:       string(q.TargetStat),
		ExperienceReward: &reward,
		IsDaily:          q.IsDaily,
		Tags:             TagField{Present: true, IsList: true, Values: tags},
		Epic:             q.Epic,
		Source:           q.GeneratedBy,
	}
}

// QuestDraft is a quest-like record that has not been normalized yet. It is
// what a user submits by hand or what the external generator returns, so any
// field may be missing or malformed.
type QuestDraft struct {
	Title            *string       `json:"title"`
	Description      *string       `json:"description"`
	Difficulty       string        `json:"difficulty"`
	TargetStat       string        `json:"targetStat"`
	ExperienceReward *int          `json:"experienceReward"`
	IsDaily          bool          `json:"isDaily"`
	Tags             TagField      `json:"tags"`
	Epic             *EpicElements `json:"epicElements,omitempty"`

	// Source is set by gesta, never decoded from generator output.
	Source Provenance `json:"-"`
}

// UnmarshalJSON decodes each field on its own. A field of the wrong JSON type
// decodes as absent, except difficulty and targetStat, which keep the raw
// text so they stay visibly invalid. Only a payload that is not an object
// fails.
func (d *QuestDraft) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = QuestDraft{
		Title:            lenientString(raw["title"]),
		Description:      lenientString(raw["description"]),
		Difficulty:       lenientEnum(raw["difficulty"]),
		TargetStat:       lenientEnum(raw["targetStat"]),
		ExperienceReward: lenientInt(raw["experienceReward"]),
	}
	if v, ok := raw["isDaily"]; ok {
		_ = json.Unmarshal(v, &d.IsDaily)
	}
	if v, ok := raw["tags"]; ok {
		if err := d.Tags.UnmarshalJSON(v); err != nil {
			return err
		}
	}
	if v, ok := raw["epicElements"]; ok && !isNull(v) {
		var epic EpicElements
		if err := json.Unmarshal(v, &epic); err == nil {
			d.Epic = &epic
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func lenientString(v json.RawMessage) *string {
	var s string
	if isNull(v) || json.Unmarshal(v, &s) != nil {
		return nil
	}
	return &s
}

func lenientEnum(v json.RawMessage) string {
	if isNull(v) {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return strings.TrimSpace(string(v))
	}
	return s
}

func lenientInt(v json.RawMessage) *int {
	var f float64
	if isNull(v) || json.Unmarshal(v, &f) != nil {
		return nil
	}
	n := int(f)
	return &n
}

// TagField records whether the tags field was present and whether it was a
// JSON list of strings.
type TagField struct {
	Present bool
	IsList  bool
	Values  []string
}

// Tags builds a well-formed tag field.
func Tags(values ...string) TagField {
	if values == nil {
		values = []string{}
	}
	return TagField{Present: true, IsList: true, Values: values}
}

func (t *TagField) UnmarshalJSON(data []byte) error {
	t.Present = true
	t.IsList = false
	t.Values = nil
	if string(data) == "null" {
		t.Present = false
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a list: keep it as a malformed value instead of failing the draft.
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			return nil
		}
		values = append(values, s)
	}
	t.IsList = true
	t.Values = values
	return nil
}

func (t TagField) MarshalJSON() ([]byte, error) {
	if !t.Present || !t.IsList {
		return []byte("null"), nil
	}
	return json.Marshal(t.Values)
}
