package entity

import "errors"

var (
	// Prompt errors
	ErrPromptRequired = errors.New("Prompt is required")
)
