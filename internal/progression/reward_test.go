package progression

import (
	"testing"

	"github.com/alexanderramin/gesta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBaseXP(t *testing.T) {
	r := Default()
	assert.Equal(t, 25, r.BaseXP(domain.DifficultyQuick))
	assert.Equal(t, 50, r.BaseXP(domain.DifficultyStandard))
	assert.Equal(t, 100, r.BaseXP(domain.DifficultyLong))
	assert.Equal(t, 200, r.BaseXP(domain.DifficultyEpic))
	assert.Equal(t, 50, r.BaseXP(domain.Difficulty("LEGENDARY")))
	assert.Equal(t, 50, r.BaseXP(""))
}

func TestQuestXP(t *testing.T) {
	r := Default()
	assert.Equal(t, 60, r.QuestXP(50, true, domain.StatNone))
	assert.Equal(t, 60, r.QuestXP(50, false, domain.StatStrength))
	assert.Equal(t, 70, r.QuestXP(50, true, domain.StatWisdom))
	assert.Equal(t, 100, r.QuestXP(100, false, domain.StatNone))
	assert.Equal(t, 30, r.QuestXP(25, true, domain.StatNone))
	assert.Equal(t, 250, r.QuestXP(200, true, domain.StatCharisma))
}

func TestStatPointsForReward(t *testing.T) {
	r := Default()
	assert.Equal(t, 0, r.StatPointsForReward(0))
	assert.Equal(t, 1, r.StatPointsForReward(5))
	assert.Equal(t, 6, r.StatPointsForReward(60))
}
