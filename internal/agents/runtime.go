package agents

import (
	"context"
	"log"

	"github.com/maliksh/finagent/config"
	"github.com/maliksh/finagent/models"
)

// Runtime answers one user turn given the full prior transcript. The
// history is replayed on every call; context resolution ("convert that to
// PKR") happens purely through replay.
type Runtime interface {
	Respond(ctx context.Context, history []models.Turn, input string) (string, error)
}

// NewRuntime selects the runtime for the current configuration: the
// model-backed specialists when an API key is configured and mock mode is
// off, the in-process dispatcher otherwise.
func NewRuntime(ctx context.Context, cfg *config.Config) (Runtime, error) {
	if cfg.LLMEnabled() {
		rt, err := NewLLMRuntime(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return rt, nil
	}
	if cfg.Debug {
		log.Printf("[agents] mock runtime selected (mock=%v, key configured=%v)",
			cfg.MockMode, cfg.APIKey != "")
	}
	return NewMockRuntime(), nil
}
