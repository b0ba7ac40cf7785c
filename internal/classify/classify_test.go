package classify

import (
	"testing"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	c := Default()
	tests := []struct {
		text   string
		want   domain.Stat
		wantOK bool
	}{
		{"go to gym", domain.StatStrength, true},
		{"GO TO GYM", domain.StatStrength, true},
		{"study math", domain.StatWisdom, true},
		{"draw art", domain.StatDexterity, true},
		{"talk to people", domain.StatCharisma, true},
		{"random text", domain.StatNone, false},
		{"", domain.StatNone, false},
		{"   ", domain.StatNone, false},
		{"Reunión con mi amigo", domain.StatCharisma, true},
		{"leer un libro", domain.StatWisdom, true},
		{"clase de música y arte", domain.StatDexterity, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := c.Detect(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScores_KeywordCountsOnce(t *testing.T) {
	c := Default()
	scores := c.Scores("gym gym gym gymnastics")
	assert.Equal(t, 1, scores[domain.StatStrength])
}

func TestScores_SubstringOfToken(t *testing.T) {
	c := Default()
	scores := c.Scores("workouts running")
	// "workouts" holds workout; "running" holds run.
	assert.Equal(t, 2, scores[domain.StatStrength])
}

func TestDetect_HighestScoreWins(t *testing.T) {
	c := Default()
	got, ok := c.Detect("talk with people at the gym")
	assert.True(t, ok)
	assert.Equal(t, domain.StatCharisma, got)
}

func TestDetect_TieUsesStatOrder(t *testing.T) {
	c := Default()

	got, ok := c.Detect("gym book")
	assert.True(t, ok)
	assert.Equal(t, domain.StatStrength, got)

	got, ok = c.Detect("call cook")
	assert.True(t, ok)
	assert.Equal(t, domain.StatDexterity, got)
}

func TestNew_CustomTable(t *testing.T) {
	c := New(KeywordTable{domain.StatWisdom: {"chess"}})
	got, ok := c.Detect("play chess")
	assert.True(t, ok)
	assert.Equal(t, domain.StatWisdom, got)

	_, ok = c.Detect("go to gym")
	assert.False(t, ok)
}
