package service

import (
	"errors"

	"housing-empire-ai/internal/entity"
)

var (
	ErrMissingCredential  = errors.New("missing API key")
	ErrParse              = errors.New("malformed leads file")
	ErrResource           = errors.New("resource unavailable")
	ErrGeneration         = errors.New("generation failed")
	ErrGenerationInFlight = errors.New("generation already in progress")
	ErrUnknownKind        = errors.New("unknown generation kind")
)

// GenerationError carries the provider's failure verbatim; its message is
// exactly what the user sees.
type GenerationError struct {
	Kind entity.GenerationKind
	Err  error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}
