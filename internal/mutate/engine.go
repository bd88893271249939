package mutate

import (
	"context"
	"fmt"
	"log"
)

// Engine chains the remote strategy with the local rule interpreter.
// Apply never fails: the interpreter accepts any intent.
type Engine struct {
	remote   Strategy
	fallback Strategy
}

// NewEngine builds the default strategy chain. remote may be nil when
// no assistant is configured.
func NewEngine(remote Strategy) *Engine {
	return &Engine{remote: remote, fallback: NewFallbackStrategy()}
}

// Apply runs the intent through the remote strategy and, when that is
// unavailable, through the local rules.
func (e *Engine) Apply(ctx context.Context, intent Intent) (Result, error) {
	if e.remote != nil {
		res, err := e.remote.Mutate(ctx, intent)
		if err == nil {
			return res, nil
		}
		log.Printf("assistant strategy failed, using local rules: %v", err)
	}

	res, err := e.fallback.Mutate(ctx, intent)
	if err != nil {
		return Result{}, fmt.Errorf("fallback mutation: %w", err)
	}
	return res, nil
}
