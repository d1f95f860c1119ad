package scoring

import "errors"

var (
	// ErrInvalidInput is returned when an incomplete or negative score pair
	// reaches the classifier. Callers are expected to filter these out first.
	ErrInvalidInput = errors.New("invalid score input")

	// ErrConfiguration is returned when the rule set cannot score a match,
	// e.g. a required category is missing.
	ErrConfiguration = errors.New("scoring configuration error")
)
