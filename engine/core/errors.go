package core

import (
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotInitialized  = errors.New("not initialized")
	ErrInvalidStage    = errors.New("invalid engine stage")
	ErrUnknown         = errors.New("unknown")
)
