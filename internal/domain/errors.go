package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a mutation receives an absent or malformed argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateTier is returned when a tier id is already present in the list
	ErrDuplicateTier = errors.New("duplicate tier id")

	// ErrTierNotFound is returned by lookups for an unknown tier id
	ErrTierNotFound = errors.New("tier not found")
)
