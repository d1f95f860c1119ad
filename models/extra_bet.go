package models

// Extra bet slugs, one stored row per (participant, slug).
const (
	ExtraChampion     = "champion"
	ExtraViceChampion = "vice_champion"
	ExtraThirdPlace   = "third_place"
	ExtraTopScorer    = "top_scorer"
	ExtraFirstScorer1 = "first_scorer_1"
	ExtraFirstScorer2 = "first_scorer_2"
	ExtraFirstScorer3 = "first_scorer_3"
)

// ExtraBets are a participant's tournament-long predictions. The first scorer
// picks name the shirt numbers of the primary team expected to score its
// first three goals. Empty fields are not predicted.
type ExtraBets struct {
	Champion     string `json:"champion"`
	ViceChampion string `json:"vice_champion"`
	ThirdPlace   string `json:"third_place"`
	TopScorer    string `json:"top_scorer"`
	FirstScorer1 string `json:"first_scorer_1"`
	FirstScorer2 string `json:"first_scorer_2"`
	FirstScorer3 string `json:"first_scorer_3"`
}

// Values maps every slug to its value, empty ones included.
func (b ExtraBets) Values() map[string]string {
	return map[string]string{
		ExtraChampion:     b.Champion,
		ExtraViceChampion: b.ViceChampion,
		ExtraThirdPlace:   b.ThirdPlace,
		ExtraTopScorer:    b.TopScorer,
		ExtraFirstScorer1: b.FirstScorer1,
		ExtraFirstScorer2: b.FirstScorer2,
		ExtraFirstScorer3: b.FirstScorer3,
	}
}

// ExtraBetsFromValues is the inverse of Values; unknown slugs are ignored.
func ExtraBetsFromValues(values map[string]string) ExtraBets {
	return ExtraBets{
		Champion:     values[ExtraChampion],
		ViceChampion: values[ExtraViceChampion],
		ThirdPlace:   values[ExtraThirdPlace],
		TopScorer:    values[ExtraTopScorer],
		FirstScorer1: values[ExtraFirstScorer1],
		FirstScorer2: values[ExtraFirstScorer2],
		FirstScorer3: values[ExtraFirstScorer3],
	}
}
