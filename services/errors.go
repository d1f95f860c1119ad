package services

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPredictionLocked = errors.New("match is closed for predictions")
	ErrExtraBetsLocked  = errors.New("extra bets closed at the first kickoff")

	ErrUserUsernameConflict = errors.New("username is already in use")
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrMatchIDConflict      = errors.New("match id is already in use")

	ErrAuthInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound  = errors.New("user not found")
	ErrMatchNotFound = errors.New("match not found")

	ErrExportDisabled = errors.New("leaderboard export is not configured")
)
