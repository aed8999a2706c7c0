package repository

import (
	"context"
	"encoding/json"

	"github.com/baseballplanet/fan-engagement/internal/kv"
	"github.com/baseballplanet/fan-engagement/internal/model"
)

// Store keys for single-value preferences.  beginnerMode is stored as
// the strings "true"/"false" to stay compatible with blobs written by
// the original client.
const (
	selectedTeamKey = "selectedTeam"
	beginnerModeKey = "beginnerMode"
)

func favoritePlayerKey(team model.Team) string { return "favoritePlayer:" + team.ID() }

// PrefsRepo persists the viewer's team selection, beginner-mode flag
// and per-team favorite player.
type PrefsRepo struct {
	store kv.Store
}

// NewPrefsRepo returns a PrefsRepo persisting through the given store.
func NewPrefsRepo(store kv.Store) *PrefsRepo {
	return &PrefsRepo{store: store}
}

// SelectedTeam returns the stored team selection.  The second return
// value is false when no valid selection exists yet.
func (r *PrefsRepo) SelectedTeam(ctx context.Context) (model.Team, bool, error) {
	raw, err := r.store.Get(ctx, selectedTeamKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}
	team, err := model.ParseTeam(string(raw))
	if err != nil {
		return 0, false, nil
	}
	return team, true, nil
}

// SetSelectedTeam stores the team selection as its string ID.
func (r *PrefsRepo) SetSelectedTeam(ctx context.Context, team model.Team) error {
	return r.store.Set(ctx, selectedTeamKey, []byte(team.ID()))
}

// BeginnerMode returns the beginner-mode flag, defaulting to false.
func (r *PrefsRepo) BeginnerMode(ctx context.Context) (bool, error) {
	raw, err := r.store.Get(ctx, beginnerModeKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return string(raw) == "true", nil
}

// SetBeginnerMode stores the flag as "true"/"false".
func (r *PrefsRepo) SetBeginnerMode(ctx context.Context, on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return r.store.Set(ctx, beginnerModeKey, []byte(v))
}

// FavoritePlayer returns the player the fan supports for the given
// team, or nil when none is chosen or the blob is unreadable.
func (r *PrefsRepo) FavoritePlayer(ctx context.Context, team model.Team) (*model.Player, error) {
	raw, err := r.store.Get(ctx, favoritePlayerKey(team))
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	var p model.Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// SetFavoritePlayer stores the fan's pick for the given team.
func (r *PrefsRepo) SetFavoritePlayer(ctx context.Context, team model.Team, p model.Player) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, favoritePlayerKey(team), raw)
}
