package networth

import "errors"

var (
	// ErrMalformedProfile is returned when a profile document is not valid JSON
	// or has no members collection.
	ErrMalformedProfile = errors.New("malformed profile")
	// ErrInvalidPlayer is returned when the requested player is not a member
	// of the profile.
	ErrInvalidPlayer = errors.New("player is not a member of the profile")
)
