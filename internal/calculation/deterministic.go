package calculation

import "github.com/google/uuid"

// idFunc returns a fresh outcome identifier (override in tests for determinism).
var idFunc = uuid.NewString

// SetIDFunc overrides the outcome ID provider (use only in tests).
func SetIDFunc(f func() string) { idFunc = f }
