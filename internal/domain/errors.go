package domain

import "errors"

var (
	ErrUnknownMap           = errors.New("unknown map")
	ErrUnknownAgent         = errors.New("unknown agent")
	ErrSlotOutOfRange       = errors.New("slot index out of range")
	ErrAgentAlreadySelected = errors.New("agent already selected on this map")
	ErrCatalogTooLarge      = errors.New("catalog too large")
	ErrInvalidCatalog       = errors.New("invalid catalog")
)
