package renderer

import "errors"

var (
	ErrInvalidCamera   = errors.New("renderer: invalid camera configuration")
	ErrInvalidSampling = errors.New("renderer: invalid sampling configuration")
	ErrNoScene         = errors.New("renderer: no scene defined")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
)
