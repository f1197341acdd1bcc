package service

import (
	"errors"
)

var (
	// ErrInvalidWord is returned when a guessed word is not in the
	// embedding vocabulary. Surfaced to the submitter, no state change.
	ErrInvalidWord = errors.New("not a valid word")

	// ErrUserAlreadyWon is returned when a user guesses again after
	// finding the secret. Surfaced to the submitter, no state change.
	ErrUserAlreadyWon = errors.New("user has already found the secret")
)
