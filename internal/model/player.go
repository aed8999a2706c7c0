package model

// PlayerStats carries the season statistics shown next to a player.
// Batting and pitching fields are both optional; the original roster
// only populates batting numbers.
type PlayerStats struct {
	AVG      string `json:"avg,omitempty"`
	ERA      string `json:"era,omitempty"`
	HomeRuns int    `json:"homeRuns,omitempty"`
	RBI      int    `json:"rbi,omitempty"`
}

// Player is a roster entry a fan can pick as their favorite.  The
// favorite pick is persisted per team under "favoritePlayer:<teamId>".
type Player struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Position   string       `json:"position"`
	BackNumber int          `json:"backNumber"`
	Team       string       `json:"team"`
	Stats      *PlayerStats `json:"stats,omitempty"`
}

// PlayersByTeam returns the fixed roster of notable players for the
// given team, two per club.
func PlayersByTeam(t Team) []Player {
	var out []Player
	for _, p := range allPlayers {
		if p.Team == t.ID() {
			out = append(out, p)
		}
	}
	return out
}

var allPlayers = []Player{
	{ID: "doosan_1", Name: "김재환", Position: "내야수", BackNumber: 32, Team: "doosan", Stats: &PlayerStats{AVG: ".285", HomeRuns: 15, RBI: 42}},
	{ID: "doosan_2", Name: "양의지", Position: "포수", BackNumber: 25, Team: "doosan", Stats: &PlayerStats{AVG: ".278", HomeRuns: 8, RBI: 35}},
	{ID: "lg_1", Name: "김현수", Position: "외야수", BackNumber: 17, Team: "lg", Stats: &PlayerStats{AVG: ".312", HomeRuns: 18, RBI: 48}},
	{ID: "lg_2", Name: "오지환", Position: "내야수", BackNumber: 24, Team: "lg", Stats: &PlayerStats{AVG: ".289", HomeRuns: 12, RBI: 38}},
	{ID: "kia_1", Name: "최형우", Position: "외야수", BackNumber: 34, Team: "kia", Stats: &PlayerStats{AVG: ".295", HomeRuns: 16, RBI: 45}},
	{ID: "kia_2", Name: "나성범", Position: "외야수", BackNumber: 5, Team: "kia", Stats: &PlayerStats{AVG: ".301", HomeRuns: 14, RBI: 41}},
	{ID: "samsung_1", Name: "구자욱", Position: "외야수", BackNumber: 5, Team: "samsung", Stats: &PlayerStats{AVG: ".288", HomeRuns: 11, RBI: 33}},
	{ID: "samsung_2", Name: "김헌곤", Position: "내야수", BackNumber: 64, Team: "samsung", Stats: &PlayerStats{AVG: ".275", HomeRuns: 9, RBI: 28}},
	{ID: "lotte_1", Name: "이대호", Position: "내야수", BackNumber: 10, Team: "lotte", Stats: &PlayerStats{AVG: ".267", HomeRuns: 13, RBI: 39}},
	{ID: "lotte_2", Name: "전준우", Position: "외야수", BackNumber: 51, Team: "lotte", Stats: &PlayerStats{AVG: ".293", HomeRuns: 10, RBI: 31}},
	{ID: "ssg_1", Name: "최정", Position: "내야수", BackNumber: 14, Team: "ssg", Stats: &PlayerStats{AVG: ".279", HomeRuns: 17, RBI: 46}},
	{ID: "ssg_2", Name: "한유섬", Position: "외야수", BackNumber: 32, Team: "ssg", Stats: &PlayerStats{AVG: ".285", HomeRuns: 8, RBI: 29}},
	{ID: "hanwha_1", Name: "노시환", Position: "내야수", BackNumber: 13, Team: "hanwha", Stats: &PlayerStats{AVG: ".291", HomeRuns: 19, RBI: 52}},
	{ID: "hanwha_2", Name: "문현빈", Position: "외야수", BackNumber: 20, Team: "hanwha", Stats: &PlayerStats{AVG: ".276", HomeRuns: 7, RBI: 26}},
	{ID: "kiwoom_1", Name: "김혜성", Position: "내야수", BackNumber: 3, Team: "kiwoom", Stats: &PlayerStats{AVG: ".298", HomeRuns: 6, RBI: 34}},
	{ID: "kiwoom_2", Name: "이정후", Position: "외야수", BackNumber: 51, Team: "kiwoom", Stats: &PlayerStats{AVG: ".315", HomeRuns: 14, RBI: 43}},
	{ID: "nc_1", Name: "박민우", Position: "외야수", BackNumber: 23, Team: "nc", Stats: &PlayerStats{AVG: ".282", HomeRuns: 12, RBI: 37}},
	{ID: "nc_2", Name: "손아섭", Position: "내야수", BackNumber: 6, Team: "nc", Stats: &PlayerStats{AVG: ".271", HomeRuns: 8, RBI: 25}},
	{ID: "kt_1", Name: "강백호", Position: "내야수", BackNumber: 50, Team: "kt", Stats: &PlayerStats{AVG: ".287", HomeRuns: 21, RBI: 55}},
	{ID: "kt_2", Name: "김민혁", Position: "외야수", BackNumber: 7, Team: "kt", Stats: &PlayerStats{AVG: ".294", HomeRuns: 9, RBI: 32}},
}
