package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeam(t *testing.T) {
	for _, team := range AllTeams() {
		got, err := ParseTeam(team.ID())
		require.NoError(t, err)
		assert.Equal(t, team, got)
	}

	_, err := ParseTeam("yankees")
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestTeamReferenceData(t *testing.T) {
	require.Len(t, AllTeams(), 10)
	seen := map[string]bool{}
	for _, team := range AllTeams() {
		assert.NotEmpty(t, team.Name())
		assert.NotEmpty(t, team.Stadium())
		assert.NotEmpty(t, team.Design().Nickname)
		assert.False(t, seen[team.ID()], "duplicate id %s", team.ID())
		seen[team.ID()] = true
	}
}

func TestTeamJSON(t *testing.T) {
	raw, err := json.Marshal(Kiwoom)
	require.NoError(t, err)
	assert.Equal(t, `"kiwoom"`, string(raw))

	var team Team
	require.NoError(t, json.Unmarshal([]byte(`"nc"`), &team))
	assert.Equal(t, NC, team)

	assert.Error(t, json.Unmarshal([]byte(`"mets"`), &team))
}

func TestPlayersByTeam(t *testing.T) {
	for _, team := range AllTeams() {
		roster := PlayersByTeam(team)
		require.NotEmpty(t, roster, "team %s has no players", team.ID())
		for _, p := range roster {
			assert.Equal(t, team.ID(), p.Team)
		}
	}
}
