package agents

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/maliksh/finagent/config"
	"github.com/maliksh/finagent/consts"
	"github.com/maliksh/finagent/models"
)

// LLMRuntime routes each query to a specialist ReAct agent backed by the
// configured chat model. Agents are built lazily, one per specialist, and
// reused across turns.
type LLMRuntime struct {
	cfg       *config.Config
	chatModel model.ToolCallingChatModel

	mu     sync.Mutex
	agents map[string]*react.Agent
}

func NewLLMRuntime(ctx context.Context, cfg *config.Config) (*LLMRuntime, error) {
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return &LLMRuntime{
		cfg:       cfg,
		chatModel: chatModel,
		agents:    make(map[string]*react.Agent),
	}, nil
}

func (r *LLMRuntime) agentFor(ctx context.Context, name string) (*react.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent, ok := r.agents[name]; ok {
		return agent, nil
	}

	spec := SpecialistFor(name)
	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          10,
		ToolCallingModel: r.chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: spec.Tools(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s agent: %w", name, err)
	}
	r.agents[name] = agent
	return agent, nil
}

func (r *LLMRuntime) Respond(ctx context.Context, history []models.Turn, input string) (string, error) {
	name := DetectIntent(input)
	agent, err := r.agentFor(ctx, name)
	if err != nil {
		return "", err
	}

	msgs := r.buildMessages(name, history, input)
	out, err := agent.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", name, err)
	}
	return out.Content, nil
}

func (r *LLMRuntime) buildMessages(name string, history []models.Turn, input string) []*schema.Message {
	spec := SpecialistFor(name)

	// Trim replayed history to the configured window, oldest first out.
	limit := r.cfg.HistoryLimit
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	msgs := make([]*schema.Message, 0, len(history)+2)
	msgs = append(msgs, schema.SystemMessage(spec.SystemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case consts.Role_Assistant:
			msgs = append(msgs, schema.AssistantMessage(turn.Content, nil))
		default:
			msgs = append(msgs, schema.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, schema.UserMessage(input))
	return msgs
}
