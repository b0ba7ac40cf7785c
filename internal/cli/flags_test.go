package cli

import (
	"testing"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyFlag(t *testing.T) {
	var f difficultyFlag
	require.NoError(t, f.Set(" Epic "))
	assert.Equal(t, domain.DifficultyEpic, f.value)
	assert.Equal(t, "EPIC", f.String())
	assert.Equal(t, "difficulty", f.Type())

	err := f.Set("hard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quick, standard, long, epic")
	assert.Equal(t, domain.DifficultyEpic, f.value, "failed Set keeps the old value")
}

func TestStatFlag(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Stat
		ok   bool
	}{
		{"strength", domain.StatStrength, true},
		{"WIS", domain.StatWisdom, true},
		{"cha", domain.StatCharisma, true},
		{"dexterity", domain.StatDexterity, true},
		{"st", domain.StatNone, false},
		{"luck", domain.StatNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f statFlag
			err := f.Set(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.value)
		})
	}
}

func TestQuestInput_Draft(t *testing.T) {
	in := questInput{title: "  leer  ", difficulty: "LONG", daily: true, tags: []string{"libros"}}
	d := in.draft()

	require.NotNil(t, d.Title)
	assert.Equal(t, "leer", *d.Title)
	assert.Nil(t, d.Description)
	assert.Equal(t, "LONG", d.Difficulty)
	assert.True(t, d.IsDaily)
	assert.Equal(t, domain.Tags("libros"), d.Tags)

	empty := (&questInput{}).draft()
	assert.Nil(t, empty.Title)
	assert.False(t, empty.Tags.Present)
}

func TestQuestForm_Builds(t *testing.T) {
	in := questInput{}
	form := questForm(&in)

	assert.NotNil(t, form)
	assert.Equal(t, "STANDARD", in.difficulty)
	assert.ErrorIs(t, validateTitle("  "), errTitleRequired)
	assert.NoError(t, validateTitle("gym"))
	assert.Len(t, statOptions(), 5)
	assert.Len(t, difficultyOptions(), 4)
}
