package model

// EntryType classifies a calendar entry.  Game outcomes (win, lose,
// scheduled) are generated from the mock schedule, ticket entries are
// created on issuance, and note entries are user-authored.
type EntryType string

const (
	EntryWin        EntryType = "win"
	EntryLose       EntryType = "lose"
	EntryScheduled  EntryType = "scheduled"
	EntryAttendance EntryType = "attendance"
	EntryNote       EntryType = "note"
	EntryTicket     EntryType = "ticket"
)

// IsGame reports whether the entry type represents a game outcome.
// The calendar view renders at most one such entry per day.
func (t EntryType) IsGame() bool {
	return t == EntryWin || t == EntryLose || t == EntryScheduled
}

// Emotion is the mood a fan attached to an entry, either directly on a
// note or derived from a game result (win→happy, lose→sad,
// scheduled→excited).
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionExcited Emotion = "excited"
	EmotionNeutral Emotion = "neutral"
)

// ValidEmotion reports whether e is one of the four known emotions.
func ValidEmotion(e Emotion) bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionExcited, EmotionNeutral:
		return true
	}
	return false
}

// Score holds the final score of a finished game from the viewer
// team's perspective.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// CalendarEntry is a single dated record in a team's fan calendar.
// Dates use day granularity ("2006-01-02").  The JSON field names match
// the blobs the original client persisted, so existing stored data
// decodes unchanged.
//
// Generated entries are unique per date: at most one game entry and at
// most one auto-generated ticket entry exist for a given day, while
// user notes may share a date freely.
type CalendarEntry struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	Type     EntryType `json:"type"`
	Title    string    `json:"title"`
	Content  string    `json:"content,omitempty"`
	Emotion  Emotion   `json:"emotion,omitempty"`
	TicketID string    `json:"ticketId,omitempty"`
	Opponent string    `json:"opponent,omitempty"`
	Score    *Score    `json:"score,omitempty"`
	GameTime string    `json:"gameTime,omitempty"`
	Stadium  string    `json:"stadium,omitempty"`
}
