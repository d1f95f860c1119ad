package models

// Participant is a roster entry eligible for ranking, identified by username.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
