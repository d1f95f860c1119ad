package models

// Score is a complete pair of goals, team A first.
type Score struct {
	A int `json:"score_a"`
	B int `json:"score_b"`
}

// PartialScore is a score pair as it is submitted or stored: either side may
// still be missing. Use Complete to get a Score out of it.
type PartialScore struct {
	A *int `json:"score_a"`
	B *int `json:"score_b"`
}

func NewPartialScore(a, b int) PartialScore {
	return PartialScore{A: &a, B: &b}
}

// Complete returns the pair as a Score when both sides are set. A pair with
// only one side set counts as not predicted.
func (p PartialScore) Complete() (Score, bool) {
	if p.A == nil || p.B == nil {
		return Score{}, false
	}
	return Score{A: *p.A, B: *p.B}, true
}

// Predictions maps participant id -> match id -> submitted scores.
type Predictions map[string]map[string]PartialScore

// Get returns the participant's complete prediction for a match.
func (p Predictions) Get(participantID, matchID string) (Score, bool) {
	bets, ok := p[participantID]
	if !ok {
		return Score{}, false
	}
	bet, ok := bets[matchID]
	if !ok {
		return Score{}, false
	}
	return bet.Complete()
}

// For returns all of one participant's predictions keyed by match id.
func (p Predictions) For(participantID string) map[string]PartialScore {
	return p[participantID]
}
