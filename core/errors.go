package core

import "errors"

// Sentinel errors used across stages.
var (
	ErrDetached          = errors.New("render owner is no longer active")
	ErrNoRecipes         = errors.New("no recipes found")
	ErrUnsupportedSource = errors.New("unsupported source type")
)
