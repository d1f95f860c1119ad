package models

import "time"

// HistoryEntry is a participant's standing recorded at one round boundary: an
// official result entered or cleared, the rules or the roster changed. Rounds
// are numbered from 1 across the whole pool.
type HistoryEntry struct {
	ParticipantID string    `json:"participant_id" db:"username"`
	Round         int       `json:"round" db:"round"`
	Position      int       `json:"position" db:"position"`
	Points        int       `json:"points" db:"points"`
	ExactScores   int       `json:"exact_scores" db:"exact_scores"`
	MarqueePoints int       `json:"marquee_points" db:"marquee_points"`
	RecordedAt    time.Time `json:"recorded_at" db:"recorded_at"`
}
