package reel

import "errors"

// Sentinel errors
var (
	// ErrPoolExhausted means more live tokens were requested than were pre-allocated
	ErrPoolExhausted = errors.New("symbol pool exhausted")
	// ErrUnknownKind means a checkout named a kind that was never registered
	ErrUnknownKind = errors.New("unknown symbol kind")
	// ErrPoolUndersized means the pool cannot cover worst-case in-flight demand
	ErrPoolUndersized = errors.New("symbol pool undersized for reel layout")
	// ErrInvalidLayout means reel or row counts are not positive
	ErrInvalidLayout = errors.New("invalid reel layout")
	// ErrDuplicateKind means two symbol kinds share an id or a name
	ErrDuplicateKind = errors.New("duplicate symbol kind")
)
