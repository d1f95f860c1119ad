package scoring

import (
	"fmt"

	"github.com/Dosada05/prediction-pool/models"
)

// Outcome is the category a prediction falls into against the official result.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeExact
	OutcomeWinnerPlusSubscore
	OutcomeWinnerOnly
	OutcomeCorrectDraw
)

var outcomeNames = map[Outcome]string{
	OutcomeMiss:               "miss",
	OutcomeExact:              "exact",
	OutcomeWinnerPlusSubscore: "winner_plus_subscore",
	OutcomeWinnerOnly:         "winner_only",
	OutcomeCorrectDraw:        "correct_draw",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Category returns the rule category that prices this outcome. A miss has no
// category and is always worth zero.
func (o Outcome) Category() (models.ScoringCategory, bool) {
	switch o {
	case OutcomeExact:
		return models.CategoryExactScore, true
	case OutcomeWinnerPlusSubscore:
		return models.CategoryWinnerPlusSubscore, true
	case OutcomeWinnerOnly:
		return models.CategoryWinnerOnly, true
	case OutcomeCorrectDraw:
		return models.CategoryCorrectDraw, true
	default:
		return "", false
	}
}

type side int

const (
	sideDraw side = iota
	sideA
	sideB
)

func winner(s models.Score) side {
	switch {
	case s.A > s.B:
		return sideA
	case s.B > s.A:
		return sideB
	default:
		return sideDraw
	}
}

// ClassifyScores classifies a complete prediction against a complete official
// result. It is total over non-negative pairs.
func ClassifyScores(pred, official models.Score) Outcome {
	if pred == official {
		return OutcomeExact
	}
	pw, ow := winner(pred), winner(official)
	if pw != ow {
		return OutcomeMiss
	}
	if pw == sideDraw {
		return OutcomeCorrectDraw
	}
	if pred.A == official.A || pred.B == official.B {
		return OutcomeWinnerPlusSubscore
	}
	return OutcomeWinnerOnly
}

// Classify is the checked form of ClassifyScores for raw submitted pairs.
func Classify(pred, official models.PartialScore) (Outcome, error) {
	p, ok := pred.Complete()
	if !ok {
		return OutcomeMiss, fmt.Errorf("%w: prediction is missing a score", ErrInvalidInput)
	}
	o, ok := official.Complete()
	if !ok {
		return OutcomeMiss, fmt.Errorf("%w: official result is missing a score", ErrInvalidInput)
	}
	return classifyChecked(p, o)
}

func classifyChecked(pred, official models.Score) (Outcome, error) {
	if pred.A < 0 || pred.B < 0 {
		return OutcomeMiss, fmt.Errorf("%w: negative predicted score %d-%d", ErrInvalidInput, pred.A, pred.B)
	}
	if official.A < 0 || official.B < 0 {
		return OutcomeMiss, fmt.Errorf("%w: negative official score %d-%d", ErrInvalidInput, official.A, official.B)
	}
	return ClassifyScores(pred, official), nil
}
