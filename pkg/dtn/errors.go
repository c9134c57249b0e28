package dtn

import "errors"

var (
	ErrNoNodes          = errors.New("simulation has no nodes")
	ErrDuplicateNode    = errors.New("node with this name already exists")
	ErrDuplicateMessage = errors.New("message with this id already exists")
	ErrUnknownNode      = errors.New("message references unknown node")
	ErrNegativeTicks    = errors.New("tick count must not be negative")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
