// Package summary serves the home-screen mock content: the latest game
// recap and the next-game preview.  Both are fixed fixtures keyed off
// the viewer's team; real score ingestion is out of scope.
package summary

// MVP names the standout player of a finished game.
type MVP struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Stats    string `json:"stats"`
}

// GameScore is the final score shown in the recap header.
type GameScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameSummary is the recap of the most recent game.
type GameSummary struct {
	Date         string    `json:"date"`
	Opponent     string    `json:"opponent"`
	OpponentLogo string    `json:"opponentLogo"`
	Score        GameScore `json:"score"`
	Result       string    `json:"result"`
	Stadium      string    `json:"stadium"`
	Highlights   []string  `json:"highlights"`
	MVP          MVP       `json:"mvp"`
	Attendance   int       `json:"attendance"`
	Duration     string    `json:"duration"`
	Weather      string    `json:"weather"`
}

// Latest returns the fixed recap of the 2025-07-15 game.
func Latest() GameSummary {
	return GameSummary{
		Date:         "2025.07.15",
		Opponent:     "LG 트윈스",
		OpponentLogo: "⚾",
		Score:        GameScore{Home: 7, Away: 4},
		Result:       "WIN",
		Stadium:      "잠실야구장",
		Highlights: []string{
			"3회초 김민수의 2점 홈런으로 역전!",
			"7회말 박준호의 결승 타점으로 승부 결정",
			"마무리 투수 이성민 완벽 마무리",
		},
		MVP:        MVP{Name: "김민수", Position: "외야수", Stats: "3타수 2안타 2타점 1홈런"},
		Attendance: 15432,
		Duration:   "3시간 12분",
		Weather:    "맑음, 기온 18°C",
	}
}

// Pitcher is a starting pitcher's line for the preview comparison.
type Pitcher struct {
	Name   string `json:"name"`
	ERA    string `json:"era"`
	Record string `json:"record"`
}

// Prediction carries the fan vote percentages.
type Prediction struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
}

// NextGame previews the upcoming fixture: pitchers, recent form and
// the current fan prediction split.
type NextGame struct {
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Opponent        string     `json:"opponent"`
	OpponentLogo    string     `json:"opponentLogo"`
	Stadium         string     `json:"stadium"`
	OurPitcher      Pitcher    `json:"ourPitcher"`
	OpponentPitcher Pitcher    `json:"opponentPitcher"`
	OurRecent       []string   `json:"ourRecent"`
	OpponentRecent  []string   `json:"opponentRecent"`
	Prediction      Prediction `json:"prediction"`
}

// Upcoming returns the fixed preview of the 2025-07-25 fixture.
func Upcoming() NextGame {
	return NextGame{
		Date:            "2025.07.25",
		Time:            "14:00",
		Opponent:        "KIA 타이거즈",
		OpponentLogo:    "🐅",
		Stadium:         "광주-KIA 챔피언스 필드",
		OurPitcher:      Pitcher{Name: "박성우", ERA: "3.24", Record: "2승 1패"},
		OpponentPitcher: Pitcher{Name: "김동진", ERA: "2.89", Record: "3승 0패"},
		OurRecent:       []string{"승", "승", "패", "승", "패"},
		OpponentRecent:  []string{"승", "패", "승", "승", "승"},
		Prediction:      Prediction{Win: 67, Lose: 33},
	}
}
