package scoring

import (
	"fmt"

	"github.com/Dosada05/prediction-pool/models"
)

// Prizes are amounts in cents. Integer division may leave a few cents of the
// pool unassigned.
type Prizes struct {
	Participants int   `json:"participants"`
	PoolCents    int64 `json:"pool_cents"`
	FirstCents   int64 `json:"first_cents"`
	SecondCents  int64 `json:"second_cents"`
	ThirdCents   int64 `json:"third_cents"`
}

func SplitPrizes(participants int, ticketPriceCents int64, d models.PrizeDistribution) (Prizes, error) {
	if d.First < 0 || d.Second < 0 || d.Third < 0 {
		return Prizes{}, fmt.Errorf("%w: negative prize percentage", ErrConfiguration)
	}
	if sum := d.First + d.Second + d.Third; sum > 100 {
		return Prizes{}, fmt.Errorf("%w: prize percentages add up to %d", ErrConfiguration, sum)
	}
	if ticketPriceCents < 0 {
		return Prizes{}, fmt.Errorf("%w: negative ticket price", ErrConfiguration)
	}

	pool := int64(participants) * ticketPriceCents
	return Prizes{
		Participants: participants,
		PoolCents:    pool,
		FirstCents:   pool * int64(d.First) / 100,
		SecondCents:  pool * int64(d.Second) / 100,
		ThirdCents:   pool * int64(d.Third) / 100,
	}, nil
}
