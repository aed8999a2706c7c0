// Package model defines the domain types shared across the application:
// the closed set of league teams, calendar entries, tickets, players and
// community records.  Types mirror the JSON layout persisted in the
// key-value store so that stored blobs round-trip without translation.
package model

import (
	"encoding/json"
	"errors"
)

// Team enumerates the ten league teams.  The set is closed: every
// accessor switches exhaustively over these constants so an unknown
// team cannot reach lookup tables at runtime.  Loosely-typed string
// IDs from the API boundary are converted once via ParseTeam.
type Team int

const (
	Doosan Team = iota
	LG
	KIA
	Samsung
	Lotte
	SSG
	Hanwha
	Kiwoom
	NC
	KT
)

// ErrUnknownTeam is returned by ParseTeam for IDs outside the fixed roster.
var ErrUnknownTeam = errors.New("unknown team id")

// TicketDesign describes the visual identity printed on a team's
// collectible tickets: brand colors, a background pattern name and the
// English nickname shown on the ticket header.
type TicketDesign struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Pattern   string `json:"pattern"`
	Nickname  string `json:"nickname"`
}

// teamInfo bundles all static reference data for one team.  It is only
// reachable through the exhaustive switch in info(), keeping the table
// private and the Team type the single point of entry.
type teamInfo struct {
	id      string
	name    string
	color   string
	logo    string
	stadium string
	design  TicketDesign
}

func (t Team) info() teamInfo {
	switch t {
	case Doosan:
		return teamInfo{"doosan", "두산 베어스", "#131230", "🐻", "잠실야구장",
			TicketDesign{"#131230", "#1a1a3a", "#ffd700", "navy-stripes", "Bears"}}
	case LG:
		return teamInfo{"lg", "LG 트윈스", "#C30452", "⚾", "잠실야구장",
			TicketDesign{"#C30452", "#e91e63", "#ffffff", "twins-diamond", "Twins"}}
	case KIA:
		return teamInfo{"kia", "KIA 타이거즈", "#EA0029", "🐅", "광주-KIA 챔피언스 필드",
			TicketDesign{"#EA0029", "#ff1744", "#000000", "tiger-stripes", "Tigers"}}
	case Samsung:
		return teamInfo{"samsung", "삼성 라이온즈", "#074CA1", "🦁", "대구 삼성 라이온즈 파크",
			TicketDesign{"#074CA1", "#1976d2", "#ffffff", "lion-mane", "Lions"}}
	case Lotte:
		return teamInfo{"lotte", "롯데 자이언츠", "#041E42", "⚡", "사직야구장",
			TicketDesign{"#041E42", "#1565c0", "#ffd700", "giant-waves", "Giants"}}
	case SSG:
		return teamInfo{"ssg", "SSG 랜더스", "#CE0E2D", "🚀", "인천 SSG 랜더스 필드",
			TicketDesign{"#CE0E2D", "#d32f2f", "#ffffff", "landers-grid", "Landers"}}
	case Hanwha:
		return teamInfo{"hanwha", "한화 이글스", "#FF6600", "🦅", "대전 한화생명 이글스 파크",
			TicketDesign{"#FF6600", "#ff9800", "#000000", "eagle-wings", "Eagles"}}
	case Kiwoom:
		return teamInfo{"kiwoom", "키움 히어로즈", "#570514", "🦸", "고척 스카이돔",
			TicketDesign{"#570514", "#8d1e2d", "#ffd700", "hero-shield", "Heroes"}}
	case NC:
		return teamInfo{"nc", "NC 다이노스", "#315288", "🦕", "창원 NC 파크",
			TicketDesign{"#315288", "#5472d3", "#ffffff", "dino-scales", "Dinos"}}
	case KT:
		return teamInfo{"kt", "KT 위즈", "#000000", "🧙", "수원 KT 위즈 파크",
			TicketDesign{"#000000", "#424242", "#ffd700", "wiz-magic", "Wiz"}}
	}
	panic("model: invalid Team value")
}

// ID returns the short string identifier used in API paths and store keys.
func (t Team) ID() string { return t.info().id }

// Name returns the full display name of the team.
func (t Team) Name() string { return t.info().name }

// Color returns the primary brand color as a hex string.
func (t Team) Color() string { return t.info().color }

// Logo returns the emoji mascot used throughout the UI.
func (t Team) Logo() string { return t.info().logo }

// Stadium returns the team's home stadium name.
func (t Team) Stadium() string { return t.info().stadium }

// Design returns the ticket visual design for the team.
func (t Team) Design() TicketDesign { return t.info().design }

// AllTeams returns the ten teams in league display order.
func AllTeams() []Team {
	return []Team{Doosan, LG, KIA, Samsung, Lotte, SSG, Hanwha, Kiwoom, NC, KT}
}

// ParseTeam converts a string identifier into a Team.  It returns
// ErrUnknownTeam for anything outside the fixed roster.
func ParseTeam(id string) (Team, error) {
	for _, t := range AllTeams() {
		if t.ID() == id {
			return t, nil
		}
	}
	return 0, ErrUnknownTeam
}

// MarshalJSON encodes a Team as its string ID so that persisted blobs
// and API payloads carry "doosan" rather than an ordinal.
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ID())
}

// UnmarshalJSON decodes a string ID back into a Team.
func (t *Team) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	parsed, err := ParseTeam(id)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
